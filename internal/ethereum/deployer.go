package ethereum

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const deploymentSalt = "kindnesscoin"

// MockDeployer hands out deterministic contract addresses instead of
// broadcasting deployment transactions.
type MockDeployer struct{}

func NewMockDeployer() *MockDeployer {
	return &MockDeployer{}
}

func (d *MockDeployer) DeployCareToken(ctx context.Context, networkID int64) (string, error) {
	return d.deploy(ctx, networkID, CareTokenContract)
}

func (d *MockDeployer) DeployCareReceipt(ctx context.Context, networkID int64) (string, error) {
	return d.deploy(ctx, networkID, CareReceiptContract)
}

// Deploy deploys both contracts of a network concurrently.
func (d *MockDeployer) Deploy(ctx context.Context, networkID int64) (*Deployment, error) {
	deployers := map[string]func(context.Context, int64) (string, error){
		CareTokenContract:   d.DeployCareToken,
		CareReceiptContract: d.DeployCareReceipt,
	}
	resultsChan := make(chan *DeployResult)

	var wg sync.WaitGroup
	for contract, deployFn := range deployers {
		wg.Add(1)
		go func(contract string, deployFn func(context.Context, int64) (string, error)) {
			defer wg.Done()
			address, err := deployFn(ctx, networkID)
			if err != nil {
				err = fmt.Errorf("deploying %s on network %d: %w", contract, networkID, err)
			}
			resultsChan <- &DeployResult{Contract: contract, Address: address, Error: err}
		}(contract, deployFn)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	deployment := &Deployment{NetworkID: networkID}
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		switch result.Contract {
		case CareTokenContract:
			deployment.CareTokenAddress = result.Address
		case CareReceiptContract:
			deployment.CareReceiptAddress = result.Address
		}
	}

	if aggrErr != nil {
		return nil, aggrErr
	}

	return deployment, nil
}

func (d *MockDeployer) deploy(ctx context.Context, networkID int64, contract string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return MockContractAddress(networkID, contract), nil
}

// MockContractAddress returns the first 20 bytes of
// keccak256("<networkID>-<contract>-kindnesscoin") as a lowercase hex address.
func MockContractAddress(networkID int64, contract string) string {
	seed := fmt.Sprintf("%d-%s-%s", networkID, contract, deploymentSalt)
	hash := crypto.Keccak256Hash([]byte(seed))
	return hexutil.Encode(hash.Bytes()[:common.AddressLength])
}
