package core

import (
	"context"

	"carecoin/internal/ethereum"
	"carecoin/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserByWalletAddress(ctx context.Context, walletAddress string) (repository.User, error)
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	GetContractAddresses(ctx context.Context, networkID int64) (repository.ContractAddress, error)
	SetContractAddresses(ctx context.Context, contracts repository.ContractAddress) (repository.ContractAddress, error)
	CreateCareToken(ctx context.Context, token repository.CareToken) (repository.CareToken, error)
	GetCareTokensByAddress(ctx context.Context, senderAddress string) ([]repository.CareToken, error)
	CreateCareReceipt(ctx context.Context, receipt repository.CareReceipt) (repository.CareReceipt, error)
	GetCareReceiptsByAddress(ctx context.Context, receiverAddress string) ([]repository.CareReceipt, error)
}

//counterfeiter:generate -o fake -fake-name ContractDeployer . ContractDeployer
type ContractDeployer interface {
	Deploy(ctx context.Context, networkID int64) (*ethereum.Deployment, error)
}
