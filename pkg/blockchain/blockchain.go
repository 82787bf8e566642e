// Package blockchain provides Go bindings and helpers to interact with the
// Drips contracts on EVM chains. It initializes an Ethereum client, wires
// typed bindings for the AddressDriver, NFTDriver, DripsHub and Caller
// contracts resolved from the per-network deployment table, and includes
// utilities for key handling and token amount conversions.
package blockchain

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// EVMClient holds a connected ethclient.Client and typed bindings for the
// core Drips contracts: AddressDriver, NFTDriver, DripsHub and Caller.
type EVMClient struct {
	Client        *ethclient.Client
	AddressDriver *AddressDriver
	NFTDriver     *NFTDriver
	DripsHub      *DripsHub
	Caller        *Caller
	Deployment    Deployment
}

// InitEvm dials an Ethereum endpoint and initializes typed bindings for the
// Drips contracts using addresses resolved from the deployment table for
// the given chain ID.
//
// Parameters:
//   - chainID: decimal chain ID of the target network (e.g. "11155111").
//   - endpoint: RPC/WS endpoint URL to dial.
//   - dialTimeout: deadline for establishing the connection.
//
// Returns a ready-to-use EVMClient or an error.
func InitEvm(chainID, endpoint string, dialTimeout time.Duration) (*EVMClient, error) {
	deployment, err := DeploymentForChain(chainID)
	if err != nil {
		zap.L().Error("Unknown chain", zap.String("chainID", chainID), zap.Error(err))
		return nil, err
	}

	var eth = new(EVMClient)
	eth.Deployment = deployment

	ctx := context.Background()
	if dialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, dialTimeout)
		defer cancel()
	}
	eth.Client, err = ethclient.DialContext(ctx, endpoint)
	if err != nil {
		zap.L().Error("Failed to ethdial", zap.Error(err))
		return nil, err
	}

	eth.AddressDriver, err = NewAddressDriver(deployment.AddressDriver, eth.Client)
	if err != nil {
		return eth, err
	}

	eth.NFTDriver, err = NewNFTDriver(deployment.NFTDriver, eth.Client)
	if err != nil {
		return eth, err
	}

	eth.DripsHub, err = NewDripsHub(deployment.DripsHub, eth.Client)
	if err != nil {
		return eth, err
	}

	eth.Caller, err = NewCaller(deployment.Caller, eth.Client)
	if err != nil {
		return eth, err
	}

	return eth, nil
}

// ERC20 binds the ERC-20 token at addr to the client's backend.
func (eth *EVMClient) ERC20(addr common.Address) (*ERC20, error) {
	return NewERC20(addr, eth.Client)
}

// WaitForReceipt polls for the receipt of the transaction with the given
// hash until it is mined or the timeout elapses. The poll interval is one
// second, matching typical block cadence closely enough for client use.
func (eth *EVMClient) WaitForReceipt(ctx context.Context, txHash common.Hash, timeout time.Duration) (*types.Receipt, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		receipt, err := eth.Client.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			zap.L().Error("receipt lookup failed", zap.String("tx", txHash.Hex()), zap.Error(err))
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// GetCurrentBlockNumber returns the latest block number.
func (eth *EVMClient) GetCurrentBlockNumber(ctx context.Context) (*big.Int, error) {
	header, err := eth.Client.HeaderByNumber(ctx, nil)
	if err != nil {
		zap.L().Error("failed to get last block number", zap.Error(err))
		return nil, err
	}
	return header.Number, nil
}

// Close releases the underlying RPC connection.
func (eth *EVMClient) Close() {
	if eth.Client != nil {
		eth.Client.Close()
	}
}
