package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"carecoin/internal/db"
)

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrUserExists               = errors.New("user already exists")
	ErrContractsNotFound        = errors.New("contracts not deployed for this network")
	ErrContractsAlreadyDeployed = errors.New("contracts already deployed for this network")
)

// ties on created_at fall back to insertion order
const newestFirst = "created_at DESC, id DESC"

type CareRepository struct {
	db Database
}

func NewCareRepository(db Database) *CareRepository {
	return &CareRepository{
		db: db,
	}
}

func (r *CareRepository) MigrateTables() error {
	err := r.db.MigrateModels(&User{}, &ContractAddress{}, &CareToken{}, &CareReceipt{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *CareRepository) GetUser(ctx context.Context, id int64) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (r *CareRepository) GetUserByWalletAddress(ctx context.Context, walletAddress string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "wallet_address", strings.ToLower(walletAddress), &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by wallet address: %w", err)
	}

	return user, nil
}

func (r *CareRepository) CreateUser(ctx context.Context, user User) (User, error) {
	user.WalletAddress = strings.ToLower(user.WalletAddress)

	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *CareRepository) GetContractAddresses(ctx context.Context, networkID int64) (ContractAddress, error) {
	var contracts ContractAddress

	err := r.db.GetOneBy(ctx, "network_id", networkID, &contracts)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ContractAddress{}, ErrContractsNotFound
		}
		return ContractAddress{}, fmt.Errorf("get contract addresses: %w", err)
	}

	return contracts, nil
}

func (r *CareRepository) SetContractAddresses(ctx context.Context, contracts ContractAddress) (ContractAddress, error) {
	err := r.db.Create(ctx, &contracts)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return ContractAddress{}, ErrContractsAlreadyDeployed
		}
		return ContractAddress{}, fmt.Errorf("set contract addresses: %w", err)
	}

	return contracts, nil
}

func (r *CareRepository) CreateCareToken(ctx context.Context, token CareToken) (CareToken, error) {
	token.SenderAddress = strings.ToLower(token.SenderAddress)

	if err := r.db.Create(ctx, &token); err != nil {
		return CareToken{}, fmt.Errorf("create care token: %w", err)
	}

	return token, nil
}

func (r *CareRepository) GetCareTokensByAddress(ctx context.Context, senderAddress string) ([]CareToken, error) {
	tokens := []CareToken{}

	err := r.db.GetAllBy(ctx, "sender_address", strings.ToLower(senderAddress), newestFirst, &tokens)
	if err != nil {
		return nil, fmt.Errorf("get care tokens by sender: %w", err)
	}

	return tokens, nil
}

func (r *CareRepository) CreateCareReceipt(ctx context.Context, receipt CareReceipt) (CareReceipt, error) {
	receipt.ReceiverAddress = strings.ToLower(receipt.ReceiverAddress)
	receipt.OriginalSenderAddress = strings.ToLower(receipt.OriginalSenderAddress)

	if err := r.db.Create(ctx, &receipt); err != nil {
		return CareReceipt{}, fmt.Errorf("create care receipt: %w", err)
	}

	return receipt, nil
}

func (r *CareRepository) GetCareReceiptsByAddress(ctx context.Context, receiverAddress string) ([]CareReceipt, error) {
	receipts := []CareReceipt{}

	err := r.db.GetAllBy(ctx, "receiver_address", strings.ToLower(receiverAddress), newestFirst, &receipts)
	if err != nil {
		return nil, fmt.Errorf("get care receipts by receiver: %w", err)
	}

	return receipts, nil
}
