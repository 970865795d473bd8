package handler

import (
	"context"
	"net/http"

	"carecoin/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CareService . CareService
type CareService interface {
	RegisterUser(ctx context.Context, walletAddress string) (core.User, error)
	GetUser(ctx context.Context, walletAddress string) (core.User, error)
	GetContracts(ctx context.Context, networkID int64) (core.Contracts, error)
	DeployContracts(ctx context.Context, msg core.DeployMessage) (core.Contracts, error)
	SimulateDeployment(ctx context.Context, networkID int64) (core.Contracts, error)
	SubmitCare(ctx context.Context, msg core.CareTokenMessage) (core.CareToken, error)
	AcknowledgeCare(ctx context.Context, msg core.CareReceiptMessage) (core.CareReceipt, error)
	ListCareTokens(ctx context.Context, address string) ([]core.CareToken, error)
	ListCareReceipts(ctx context.Context, address string) ([]core.CareReceipt, error)
	GetStats(ctx context.Context, address string) (core.Stats, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
