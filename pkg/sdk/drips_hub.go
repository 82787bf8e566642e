package sdk

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/drips-network/drips-sdk-go/pkg/blockchain"
	"github.com/drips-network/drips-sdk-go/pkg/drips"
	"github.com/drips-network/drips-sdk-go/pkg/errs"
	"github.com/drips-network/drips-sdk-go/pkg/model"
)

// DripsHubClient wraps the protocol's hub/ledger contract: cycle
// bookkeeping, balance queries, and the receive/split fund-flow steps.
type DripsHubClient struct {
	hub    dripsHubContract
	txOpts txOptsFunc
	read   time.Duration
	submit time.Duration
}

// CycleSecs returns the protocol's cycle length in seconds.
func (c *DripsHubClient) CycleSecs(ctx context.Context) (uint32, error) {
	ctx, cancel := withDeadline(ctx, c.read)
	defer cancel()
	secs, err := c.hub.CycleSecs(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, errs.Passthrough(err)
	}
	return secs, nil
}

// ReceivableCyclesCount returns how many completed cycles of the token the
// user can currently receive drips for.
func (c *DripsHubClient) ReceivableCyclesCount(ctx context.Context, userID, tokenAddress string) (uint32, error) {
	id, err := drips.ParseUserID("userId", userID)
	if err != nil {
		return 0, err
	}
	if err := drips.ValidateAddress("tokenAddress", tokenAddress); err != nil {
		return 0, err
	}

	ctx, cancel := withDeadline(ctx, c.read)
	defer cancel()
	cycles, err := c.hub.ReceivableDripsCycles(&bind.CallOpts{Context: ctx}, id, common.HexToAddress(tokenAddress))
	if err != nil {
		return 0, errs.Passthrough(err)
	}
	return cycles, nil
}

// GetDripsState returns the user's current drips state for the token:
// configuration hashes, last update time, streamed balance, and the
// timestamp when funds run out.
func (c *DripsHubClient) GetDripsState(ctx context.Context, userID, tokenAddress string) (*blockchain.DripsState, error) {
	id, err := drips.ParseUserID("userId", userID)
	if err != nil {
		return nil, err
	}
	if err := drips.ValidateAddress("tokenAddress", tokenAddress); err != nil {
		return nil, err
	}

	ctx, cancel := withDeadline(ctx, c.read)
	defer cancel()
	state, err := c.hub.DripsState(&bind.CallOpts{Context: ctx}, id, common.HexToAddress(tokenAddress))
	if err != nil {
		return nil, errs.Passthrough(err)
	}
	return &state, nil
}

// GetSplittable returns the user's received but not yet split amount of the
// token.
func (c *DripsHubClient) GetSplittable(ctx context.Context, userID, tokenAddress string) (*big.Int, error) {
	id, err := drips.ParseUserID("userId", userID)
	if err != nil {
		return nil, err
	}
	if err := drips.ValidateAddress("tokenAddress", tokenAddress); err != nil {
		return nil, err
	}

	ctx, cancel := withDeadline(ctx, c.read)
	defer cancel()
	amt, err := c.hub.Splittable(&bind.CallOpts{Context: ctx}, id, common.HexToAddress(tokenAddress))
	if err != nil {
		return nil, errs.Passthrough(err)
	}
	return amt, nil
}

// GetCollectable returns the user's split but not yet collected amount of
// the token.
func (c *DripsHubClient) GetCollectable(ctx context.Context, userID, tokenAddress string) (*big.Int, error) {
	id, err := drips.ParseUserID("userId", userID)
	if err != nil {
		return nil, err
	}
	if err := drips.ValidateAddress("tokenAddress", tokenAddress); err != nil {
		return nil, err
	}

	ctx, cancel := withDeadline(ctx, c.read)
	defer cancel()
	amt, err := c.hub.Collectable(&bind.CallOpts{Context: ctx}, id, common.HexToAddress(tokenAddress))
	if err != nil {
		return nil, errs.Passthrough(err)
	}
	return amt, nil
}

// GetTotalBalance returns the total amount of the token held by the
// protocol across all users.
func (c *DripsHubClient) GetTotalBalance(ctx context.Context, tokenAddress string) (*big.Int, error) {
	if err := drips.ValidateAddress("tokenAddress", tokenAddress); err != nil {
		return nil, err
	}

	ctx, cancel := withDeadline(ctx, c.read)
	defer cancel()
	amt, err := c.hub.TotalBalance(&bind.CallOpts{Context: ctx}, common.HexToAddress(tokenAddress))
	if err != nil {
		return nil, errs.Passthrough(err)
	}
	return amt, nil
}

// ReceiveDrips advances the user's received drips of the token by up to
// maxCycles completed cycles, making them splittable.
func (c *DripsHubClient) ReceiveDrips(ctx context.Context, userID, tokenAddress string, maxCycles uint32) (common.Hash, error) {
	id, err := drips.ParseUserID("userId", userID)
	if err != nil {
		return common.Hash{}, err
	}
	if err := drips.ValidateAddress("tokenAddress", tokenAddress); err != nil {
		return common.Hash{}, err
	}
	if maxCycles == 0 {
		return common.Hash{}, errs.InvalidArgument("maxCycles", "0", "must be positive")
	}

	ctx, cancel := withDeadline(ctx, c.submit)
	defer cancel()
	opts, err := c.txOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := c.hub.ReceiveDrips(opts, id, common.HexToAddress(tokenAddress), maxCycles)
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}

// Split distributes the user's splittable funds of the token according to
// currReceivers, which must match the user's on-chain splits configuration.
// The list is sorted and deduplicated before submission.
func (c *DripsHubClient) Split(ctx context.Context, userID, tokenAddress string, currReceivers []model.SplitsReceiver) (common.Hash, error) {
	id, err := drips.ParseUserID("userId", userID)
	if err != nil {
		return common.Hash{}, err
	}
	if err := drips.ValidateAddress("tokenAddress", tokenAddress); err != nil {
		return common.Hash{}, err
	}
	if err := drips.ValidateSplitsReceivers("currReceivers", currReceivers); err != nil {
		return common.Hash{}, err
	}
	normalized, err := drips.NormalizeSplits(currReceivers)
	if err != nil {
		return common.Hash{}, err
	}
	wire, err := splitsToWire(normalized)
	if err != nil {
		return common.Hash{}, err
	}

	ctx, cancel := withDeadline(ctx, c.submit)
	defer cancel()
	opts, err := c.txOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := c.hub.Split(opts, id, common.HexToAddress(tokenAddress), wire)
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}
