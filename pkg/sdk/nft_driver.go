package sdk

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/drips-network/drips-sdk-go/pkg/drips"
	"github.com/drips-network/drips-sdk-go/pkg/errs"
	"github.com/drips-network/drips-sdk-go/pkg/model"
)

// NFTDriverClient wraps the NFT-based driver contract. Every user identity
// is a minted token; operations are keyed by its decimal token ID.
type NFTDriverClient struct {
	driver nftDriverContract
	txOpts txOptsFunc
	submit time.Duration
}

// CreateAccount mints a new token (a new user ID) to the given address,
// optionally emitting metadata entries for it in the same transaction.
// The minted token ID can be recovered from the receipt with
// TokenIDFromReceipt once the transaction is mined.
func (c *NFTDriverClient) CreateAccount(ctx context.Context, to string, metadata []model.UserMetadata) (common.Hash, error) {
	if err := drips.ValidateAddress("to", to); err != nil {
		return common.Hash{}, err
	}
	// Minting without metadata is fine; nil simply means none.
	if metadata != nil {
		if err := drips.ValidateUserMetadata("userMetadata", metadata); err != nil {
			return common.Hash{}, err
		}
	}

	ctx, cancel := withDeadline(ctx, c.submit)
	defer cancel()
	opts, err := c.txOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := c.driver.SafeMint(opts, common.HexToAddress(to), metadataToWire(metadata))
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}

// TokenIDFromReceipt extracts the token ID minted by a CreateAccount
// transaction from its receipt, as a decimal string.
func (c *NFTDriverClient) TokenIDFromReceipt(receipt *types.Receipt) (string, error) {
	if receipt == nil {
		return "", errs.MissingArgument("receipt")
	}
	id, err := c.driver.TokenIDFromMintReceipt(receipt)
	if err != nil {
		return "", errs.Passthrough(err)
	}
	return id.String(), nil
}

// Collect transfers the token's collected funds of the token asset to
// transferTo.
func (c *NFTDriverClient) Collect(ctx context.Context, tokenID, tokenAddress, transferTo string) (common.Hash, error) {
	id, err := drips.ParseUserID("tokenId", tokenID)
	if err != nil {
		return common.Hash{}, err
	}
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
	tx, err := c.driver.Collect(opts, id, common.HexToAddress(tokenAddress), common.HexToAddress(transferTo))
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}

// Give transfers amount of the token from the token's user ID to the
// receiver user ID.
func (c *NFTDriverClient) Give(ctx context.Context, tokenID, receiverUserID, tokenAddress string, amount *big.Int) (common.Hash, error) {
	id, err := drips.ParseUserID("tokenId", tokenID)
	if err != nil {
		return common.Hash{}, err
	}
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
	tx, err := c.driver.Give(opts, id, receiver, common.HexToAddress(tokenAddress), amount)
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}

// SetSplits replaces the token's splits configuration. The receiver list is
// sorted and deduplicated before submission.
func (c *NFTDriverClient) SetSplits(ctx context.Context, tokenID string, receivers []model.SplitsReceiver) (common.Hash, error) {
	id, err := drips.ParseUserID("tokenId", tokenID)
	if err != nil {
		return common.Hash{}, err
	}
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
	tx, err := c.driver.SetSplits(opts, id, wire)
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}

// SetDrips replaces the token's drips configuration for the asset. Both
// receiver lists are sorted and deduplicated before submission.
func (c *NFTDriverClient) SetDrips(ctx context.Context, tokenID, tokenAddress string, currReceivers []model.DripsReceiver, balanceDelta *big.Int, newReceivers []model.DripsReceiver, transferTo string) (common.Hash, error) {
	id, err := drips.ParseUserID("tokenId", tokenID)
	if err != nil {
		return common.Hash{}, err
	}
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
	tx, err := c.driver.SetDrips(opts, id, common.HexToAddress(tokenAddress), currWire, balanceDelta, nextWire, common.HexToAddress(transferTo))
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}

// EmitUserMetadata emits the given metadata entries for the token's user ID.
func (c *NFTDriverClient) EmitUserMetadata(ctx context.Context, tokenID string, metadata []model.UserMetadata) (common.Hash, error) {
	id, err := drips.ParseUserID("tokenId", tokenID)
	if err != nil {
		return common.Hash{}, err
	}
	if err := drips.ValidateUserMetadata("userMetadata", metadata); err != nil {
		return common.Hash{}, err
	}

	ctx, cancel := withDeadline(ctx, c.submit)
	defer cancel()
	opts, err := c.txOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := c.driver.EmitUserMetadata(opts, id, metadataToWire(metadata))
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}
