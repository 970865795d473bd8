package core

import (
	"context"
	"errors"
	"fmt"

	"carecoin/internal/repository"

	"go.uber.org/zap"
)

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrContractsNotFound        = errors.New("contracts not deployed for this network")
	ErrContractsAlreadyDeployed = errors.New("contracts already deployed for this network")
)

// CareService keeps the rules of the care coin API on top of the repository.
type CareService struct {
	logs     *zap.SugaredLogger
	repo     Repository
	deployer ContractDeployer
}

// NewCareService is a constructor function for the CareService type.
func NewCareService(logger *zap.SugaredLogger, repo Repository, deployer ContractDeployer) *CareService {
	return &CareService{
		logs:     logger,
		repo:     repo,
		deployer: deployer,
	}
}

// RegisterUser returns the user with the given wallet address, creating it on first sight.
func (s *CareService) RegisterUser(ctx context.Context, walletAddress string) (User, error) {
	existing, err := s.repo.GetUserByWalletAddress(ctx, walletAddress)
	if err == nil {
		return userToRecord(existing), nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return User{}, fmt.Errorf("get user by wallet address: %w", err)
	}

	created, err := s.repo.CreateUser(ctx, repository.User{WalletAddress: walletAddress})
	if err == nil {
		s.logs.Infow("user registered", "userId", created.ID, "walletAddress", created.WalletAddress)
		return userToRecord(created), nil
	}
	if !errors.Is(err, repository.ErrUserExists) {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	// a concurrent request created the user between the lookup and the insert
	winner, err := s.repo.GetUserByWalletAddress(ctx, walletAddress)
	if err != nil {
		return User{}, fmt.Errorf("get user after conflict: %w", err)
	}

	return userToRecord(winner), nil
}

// GetUser looks a user up by wallet address, ignoring its case.
func (s *CareService) GetUser(ctx context.Context, walletAddress string) (User, error) {
	user, err := s.repo.GetUserByWalletAddress(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by wallet address: %w", err)
	}

	return userToRecord(user), nil
}

// GetContracts returns the contracts deployed on a network.
func (s *CareService) GetContracts(ctx context.Context, networkID int64) (Contracts, error) {
	contracts, err := s.repo.GetContractAddresses(ctx, networkID)
	if err != nil {
		if errors.Is(err, repository.ErrContractsNotFound) {
			return Contracts{}, ErrContractsNotFound
		}
		return Contracts{}, fmt.Errorf("get contract addresses: %w", err)
	}

	return contractsToRecord(contracts), nil
}

// DeployContracts stores the contract addresses of a network. Only the first
// deployment of a network is kept.
func (s *CareService) DeployContracts(ctx context.Context, msg DeployMessage) (Contracts, error) {
	_, err := s.repo.GetContractAddresses(ctx, msg.NetworkID)
	if err == nil {
		return Contracts{}, ErrContractsAlreadyDeployed
	}
	if !errors.Is(err, repository.ErrContractsNotFound) {
		return Contracts{}, fmt.Errorf("get contract addresses: %w", err)
	}

	contracts, err := s.repo.SetContractAddresses(ctx, repository.ContractAddress{
		NetworkID:          msg.NetworkID,
		CareTokenAddress:   &msg.CareTokenAddress,
		CareReceiptAddress: &msg.CareReceiptAddress,
	})
	if err != nil {
		if errors.Is(err, repository.ErrContractsAlreadyDeployed) {
			return Contracts{}, ErrContractsAlreadyDeployed
		}
		return Contracts{}, fmt.Errorf("set contract addresses: %w", err)
	}

	s.logs.Infow("contracts deployed",
		"networkId", contracts.NetworkID,
		"careTokenAddress", msg.CareTokenAddress,
		"careReceiptAddress", msg.CareReceiptAddress,
	)

	return contractsToRecord(contracts), nil
}

// SimulateDeployment deploys the contracts of a network with the mock
// deployer and stores the resulting addresses.
func (s *CareService) SimulateDeployment(ctx context.Context, networkID int64) (Contracts, error) {
	deployment, err := s.deployer.Deploy(ctx, networkID)
	if err != nil {
		return Contracts{}, fmt.Errorf("deploy contracts: %w", err)
	}

	return s.DeployContracts(ctx, DeployMessage{
		NetworkID:          deployment.NetworkID,
		CareTokenAddress:   deployment.CareTokenAddress,
		CareReceiptAddress: deployment.CareReceiptAddress,
	})
}

// SubmitCare records a sent care token.
func (s *CareService) SubmitCare(ctx context.Context, msg CareTokenMessage) (CareToken, error) {
	token, err := s.repo.CreateCareToken(ctx, repository.CareToken{
		TokenID:         msg.TokenID,
		SenderAddress:   msg.SenderAddress,
		Message:         msg.Message,
		TransactionHash: msg.TransactionHash,
		NetworkID:       msg.NetworkID,
	})
	if err != nil {
		return CareToken{}, fmt.Errorf("create care token: %w", err)
	}

	s.logs.Infow("care token submitted", "tokenId", token.TokenID, "senderAddress", token.SenderAddress)

	return careTokenToRecord(token), nil
}

// AcknowledgeCare records a care receipt. The original sender does not have
// to own any care token.
func (s *CareService) AcknowledgeCare(ctx context.Context, msg CareReceiptMessage) (CareReceipt, error) {
	receipt, err := s.repo.CreateCareReceipt(ctx, repository.CareReceipt{
		TokenID:               msg.TokenID,
		ReceiverAddress:       msg.ReceiverAddress,
		OriginalSenderAddress: msg.OriginalSenderAddress,
		AcknowledgmentMessage: msg.AcknowledgmentMessage,
		TransactionHash:       msg.TransactionHash,
		NetworkID:             msg.NetworkID,
	})
	if err != nil {
		return CareReceipt{}, fmt.Errorf("create care receipt: %w", err)
	}

	s.logs.Infow("care acknowledged", "tokenId", receipt.TokenID, "receiverAddress", receipt.ReceiverAddress)

	return careReceiptToRecord(receipt), nil
}

func (s *CareService) ListCareTokens(ctx context.Context, address string) ([]CareToken, error) {
	tokens, err := s.repo.GetCareTokensByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("get care tokens by address: %w", err)
	}

	records := make([]CareToken, len(tokens))
	for i, token := range tokens {
		records[i] = careTokenToRecord(token)
	}

	return records, nil
}

func (s *CareService) ListCareReceipts(ctx context.Context, address string) ([]CareReceipt, error) {
	receipts, err := s.repo.GetCareReceiptsByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("get care receipts by address: %w", err)
	}

	records := make([]CareReceipt, len(receipts))
	for i, receipt := range receipts {
		records[i] = careReceiptToRecord(receipt)
	}

	return records, nil
}

func userToRecord(user repository.User) User {
	return User{
		ID:            user.ID,
		WalletAddress: user.WalletAddress,
		CreatedAt:     user.CreatedAt,
	}
}

func contractsToRecord(contracts repository.ContractAddress) Contracts {
	return Contracts{
		ID:                 contracts.ID,
		NetworkID:          contracts.NetworkID,
		CareTokenAddress:   contracts.CareTokenAddress,
		CareReceiptAddress: contracts.CareReceiptAddress,
		DeployedAt:         contracts.DeployedAt,
	}
}

func careTokenToRecord(token repository.CareToken) CareToken {
	return CareToken{
		ID:              token.ID,
		TokenID:         token.TokenID,
		SenderAddress:   token.SenderAddress,
		Message:         token.Message,
		TransactionHash: token.TransactionHash,
		NetworkID:       token.NetworkID,
		CreatedAt:       token.CreatedAt,
	}
}

func careReceiptToRecord(receipt repository.CareReceipt) CareReceipt {
	return CareReceipt{
		ID:                    receipt.ID,
		TokenID:               receipt.TokenID,
		ReceiverAddress:       receipt.ReceiverAddress,
		OriginalSenderAddress: receipt.OriginalSenderAddress,
		AcknowledgmentMessage: receipt.AcknowledgmentMessage,
		TransactionHash:       receipt.TransactionHash,
		NetworkID:             receipt.NetworkID,
		CreatedAt:             receipt.CreatedAt,
	}
}
