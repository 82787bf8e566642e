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

// AddressDriverClient wraps the address-based driver contract. Every
// operation validates its arguments, normalizes receiver lists, and
// delegates a single call; collaborator failures are forwarded unchanged.
type AddressDriverClient struct {
	driver addressDriverContract
	erc20  erc20Factory
	signer common.Address
	txOpts txOptsFunc
	read   time.Duration
	submit time.Duration
}

// GetUserIDByAddress returns the user ID the driver derives for the given
// address, as a decimal string.
func (c *AddressDriverClient) GetUserIDByAddress(ctx context.Context, addr string) (string, error) {
	if err := drips.ValidateAddress("address", addr); err != nil {
		return "", err
	}

	ctx, cancel := withDeadline(ctx, c.read)
	defer cancel()
	id, err := c.driver.CalcUserId(&bind.CallOpts{Context: ctx}, common.HexToAddress(addr))
	if err != nil {
		return "", errs.Passthrough(err)
	}
	return id.String(), nil
}

// GetUserID returns the user ID of the configured signer.
func (c *AddressDriverClient) GetUserID(ctx context.Context) (string, error) {
	if c.signer == (common.Address{}) {
		return "", errs.MissingArgument("privateKey")
	}
	return c.GetUserIDByAddress(ctx, c.signer.Hex())
}

// GetAllowance returns how much of the token the driver may spend on
// behalf of the configured signer.
func (c *AddressDriverClient) GetAllowance(ctx context.Context, tokenAddress string) (*big.Int, error) {
	if err := drips.ValidateAddress("tokenAddress", tokenAddress); err != nil {
		return nil, err
	}
	if c.signer == (common.Address{}) {
		return nil, errs.MissingArgument("privateKey")
	}

	token, err := c.erc20(common.HexToAddress(tokenAddress))
	if err != nil {
		return nil, errs.Passthrough(err)
	}
	ctx, cancel := withDeadline(ctx, c.read)
	defer cancel()
	allowance, err := token.Allowance(&bind.CallOpts{Context: ctx}, c.signer, c.driver.Address())
	if err != nil {
		return nil, errs.Passthrough(err)
	}
	return allowance, nil
}

// Approve lets the driver spend an unlimited amount of the signer's tokens.
func (c *AddressDriverClient) Approve(ctx context.Context, tokenAddress string) (common.Hash, error) {
	if err := drips.ValidateAddress("tokenAddress", tokenAddress); err != nil {
		return common.Hash{}, err
	}

	token, err := c.erc20(common.HexToAddress(tokenAddress))
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	ctx, cancel := withDeadline(ctx, c.submit)
	defer cancel()
	opts, err := c.txOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := token.Approve(opts, c.driver.Address(), blockchain.MaxUint256())
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}

// Collect transfers the signer's collected funds of the token to transferTo.
func (c *AddressDriverClient) Collect(ctx context.Context, tokenAddress, transferTo string) (common.Hash, error) {
	if err := drips.ValidateAddress("tokenAddress", tokenAddress); err != nil {
		return common.Hash{}, err
	}
	if err := drips.ValidateAddress("transferTo", transferTo); err != nil {
		return common.Hash{}, err
	}

	ctx, cancel := withDeadline(ctx, c.submit)
	defer cancel()
	opts, err := c.txOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := c.driver.Collect(opts, common.HexToAddress(tokenAddress), common.HexToAddress(transferTo))
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}

// Give transfers amount of the token from the signer to the receiver user ID.
func (c *AddressDriverClient) Give(ctx context.Context, receiverUserID, tokenAddress string, amount *big.Int) (common.Hash, error) {
	receiver, err := drips.ParseUserID("receiverUserId", receiverUserID)
	if err != nil {
		return common.Hash{}, err
	}
	if err := drips.ValidateAddress("tokenAddress", tokenAddress); err != nil {
		return common.Hash{}, err
	}
	if err := drips.ValidateAmount("amount", amount); err != nil {
		return common.Hash{}, err
	}

	ctx, cancel := withDeadline(ctx, c.submit)
	defer cancel()
	opts, err := c.txOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := c.driver.Give(opts, receiver, common.HexToAddress(tokenAddress), amount)
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}

// SetSplits replaces the signer's splits configuration. The receiver list
// is sorted and deduplicated before submission; an empty list clears all
// receivers, a nil list is a missing argument.
func (c *AddressDriverClient) SetSplits(ctx context.Context, receivers []model.SplitsReceiver) (common.Hash, error) {
	if err := drips.ValidateSplitsReceivers("receivers", receivers); err != nil {
		return common.Hash{}, err
	}
	normalized, err := drips.NormalizeSplits(receivers)
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
	tx, err := c.driver.SetSplits(opts, wire)
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}

// SetDrips replaces the signer's drips configuration for the token.
// currReceivers must match the on-chain state; newReceivers becomes the new
// configuration. Both lists are sorted and deduplicated before submission;
// empty lists are valid (clearing), nil lists are missing arguments.
// balanceDelta may be negative to withdraw streamed funds to transferTo.
func (c *AddressDriverClient) SetDrips(ctx context.Context, tokenAddress string, currReceivers []model.DripsReceiver, balanceDelta *big.Int, newReceivers []model.DripsReceiver, transferTo string) (common.Hash, error) {
	if err := drips.ValidateAddress("tokenAddress", tokenAddress); err != nil {
		return common.Hash{}, err
	}
	if err := drips.ValidateDripsReceivers("currReceivers", currReceivers); err != nil {
		return common.Hash{}, err
	}
	if balanceDelta == nil {
		return common.Hash{}, errs.MissingArgument("balanceDelta")
	}
	if err := drips.ValidateDripsReceivers("newReceivers", newReceivers); err != nil {
		return common.Hash{}, err
	}
	if err := drips.ValidateAddress("transferTo", transferTo); err != nil {
		return common.Hash{}, err
	}

	curr, err := drips.NormalizeDripsReceivers(currReceivers)
	if err != nil {
		return common.Hash{}, err
	}
	next, err := drips.NormalizeDripsReceivers(newReceivers)
	if err != nil {
		return common.Hash{}, err
	}
	currWire, err := dripsToWire(curr)
	if err != nil {
		return common.Hash{}, err
	}
	nextWire, err := dripsToWire(next)
	if err != nil {
		return common.Hash{}, err
	}

	ctx, cancel := withDeadline(ctx, c.submit)
	defer cancel()
	opts, err := c.txOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := c.driver.SetDrips(opts, common.HexToAddress(tokenAddress), currWire, balanceDelta, nextWire, common.HexToAddress(transferTo))
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}

// EmitUserMetadata emits the given metadata entries for the signer's user ID.
func (c *AddressDriverClient) EmitUserMetadata(ctx context.Context, metadata []model.UserMetadata) (common.Hash, error) {
	if err := drips.ValidateUserMetadata("userMetadata", metadata); err != nil {
		return common.Hash{}, err
	}

	ctx, cancel := withDeadline(ctx, c.submit)
	defer cancel()
	opts, err := c.txOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := c.driver.EmitUserMetadata(opts, metadataToWire(metadata))
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}
