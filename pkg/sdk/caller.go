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
)

// Call is one inner call of a batch: pre-encoded calldata sent to a target
// contract, with an optional native token value.
type Call struct {
	// To is the hex address of the target contract.
	To string
	// Data is the ABI-encoded calldata, e.g. from a binding's PackCalldata.
	Data []byte
	// Value is the native token amount forwarded with the call; nil means 0.
	Value *big.Int
}

// CallerClient wraps the batched-call contract. It submits several protocol
// calls atomically and manages which addresses may act on the signer's
// behalf.
type CallerClient struct {
	caller callerContract
	signer common.Address
	txOpts txOptsFunc
	read   time.Duration
	submit time.Duration
}

// Authorize lets the given address submit calls on the signer's behalf.
func (c *CallerClient) Authorize(ctx context.Context, user string) (common.Hash, error) {
	if err := drips.ValidateAddress("user", user); err != nil {
		return common.Hash{}, err
	}

	ctx, cancel := withDeadline(ctx, c.submit)
	defer cancel()
	opts, err := c.txOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := c.caller.Authorize(opts, common.HexToAddress(user))
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}

// Unauthorize revokes the given address's authorization.
func (c *CallerClient) Unauthorize(ctx context.Context, user string) (common.Hash, error) {
	if err := drips.ValidateAddress("user", user); err != nil {
		return common.Hash{}, err
	}

	ctx, cancel := withDeadline(ctx, c.submit)
	defer cancel()
	opts, err := c.txOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := c.caller.Unauthorize(opts, common.HexToAddress(user))
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}

// IsAuthorized reports whether user may submit calls on sender's behalf.
// An empty sender means the signer's own address.
func (c *CallerClient) IsAuthorized(ctx context.Context, sender, user string) (bool, error) {
	from, err := c.senderOrSigner(sender)
	if err != nil {
		return false, err
	}
	if err := drips.ValidateAddress("user", user); err != nil {
		return false, err
	}

	ctx, cancel := withDeadline(ctx, c.read)
	defer cancel()
	ok, err := c.caller.IsAuthorized(&bind.CallOpts{Context: ctx}, from, common.HexToAddress(user))
	if err != nil {
		return false, errs.Passthrough(err)
	}
	return ok, nil
}

// AllAuthorized returns every address authorized to act on sender's behalf,
// as hex strings. An empty sender means the signer's own address.
func (c *CallerClient) AllAuthorized(ctx context.Context, sender string) ([]string, error) {
	from, err := c.senderOrSigner(sender)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withDeadline(ctx, c.read)
	defer cancel()
	addrs, err := c.caller.AllAuthorized(&bind.CallOpts{Context: ctx}, from)
	if err != nil {
		return nil, errs.Passthrough(err)
	}
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.Hex()
	}
	return out, nil
}

// senderOrSigner resolves an optional sender address, falling back to the
// signer derived from the configured private key.
func (c *CallerClient) senderOrSigner(sender string) (common.Address, error) {
	if sender == "" {
		if c.signer == (common.Address{}) {
			return common.Address{}, errs.MissingArgument("privateKey")
		}
		return c.signer, nil
	}
	if err := drips.ValidateAddress("sender", sender); err != nil {
		return common.Address{}, err
	}
	return common.HexToAddress(sender), nil
}

// CallBatched submits the given calls atomically in one transaction: either
// all inner calls succeed or the whole batch reverts. The batch must not be
// empty.
func (c *CallerClient) CallBatched(ctx context.Context, calls []Call) (common.Hash, error) {
	if len(calls) == 0 {
		return common.Hash{}, errs.MissingArgument("calls")
	}
	wire := make([]blockchain.Call, len(calls))
	for i, call := range calls {
		if err := drips.ValidateAddress("calls.to", call.To); err != nil {
			return common.Hash{}, err
		}
		if len(call.Data) == 0 {
			return common.Hash{}, errs.MissingArgument("calls.data")
		}
		value := call.Value
		if value == nil {
			value = big.NewInt(0)
		}
		wire[i] = blockchain.Call{
			To:    common.HexToAddress(call.To),
			Data:  call.Data,
			Value: value,
		}
	}

	ctx, cancel := withDeadline(ctx, c.submit)
	defer cancel()
	opts, err := c.txOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := c.caller.CallBatched(opts, wire)
	if err != nil {
		return common.Hash{}, errs.Passthrough(err)
	}
	return tx.Hash(), nil
}
