package blockchain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// callerABI covers the Caller functions the SDK calls.
const callerABI = `[
	{"type":"function","name":"authorize","stateMutability":"nonpayable","inputs":[{"name":"user","type":"address"}],"outputs":[]},
	{"type":"function","name":"unauthorize","stateMutability":"nonpayable","inputs":[{"name":"user","type":"address"}],"outputs":[]},
	{"type":"function","name":"isAuthorized","stateMutability":"view","inputs":[{"name":"sender","type":"address"},{"name":"user","type":"address"}],"outputs":[{"name":"authorized","type":"bool"}]},
	{"type":"function","name":"allAuthorized","stateMutability":"view","inputs":[{"name":"sender","type":"address"}],"outputs":[{"name":"authorized","type":"address[]"}]},
	{"type":"function","name":"callBatched","stateMutability":"payable","inputs":[{"name":"calls","type":"tuple[]","components":[{"name":"to","type":"address"},{"name":"data","type":"bytes"},{"name":"value","type":"uint256"}]}],"outputs":[{"name":"returnData","type":"bytes[]"}]}
]`

// Caller is a typed binding of the batched-call contract. It lets a sender
// bundle multiple contract calls into one transaction and lets users
// authorize other addresses to call on their behalf.
type Caller struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

// NewCaller binds the Caller contract at address to backend.
func NewCaller(address common.Address, backend bind.ContractBackend) (*Caller, error) {
	parsed, err := abi.JSON(strings.NewReader(callerABI))
	if err != nil {
		return nil, err
	}
	return &Caller{
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

// Address returns the bound contract address.
func (c *Caller) Address() common.Address {
	return c.address
}

// Authorize lets user make calls on behalf of the sender.
func (c *Caller) Authorize(opts *bind.TransactOpts, user common.Address) (*types.Transaction, error) {
	return c.contract.Transact(opts, "authorize", user)
}

// Unauthorize revokes user's authorization for the sender.
func (c *Caller) Unauthorize(opts *bind.TransactOpts, user common.Address) (*types.Transaction, error) {
	return c.contract.Transact(opts, "unauthorize", user)
}

// IsAuthorized reports whether user may make calls on behalf of sender.
func (c *Caller) IsAuthorized(opts *bind.CallOpts, sender, user common.Address) (bool, error) {
	var out []interface{}
	if err := c.contract.Call(opts, &out, "isAuthorized", sender, user); err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// AllAuthorized returns all addresses authorized to call on behalf of sender.
func (c *Caller) AllAuthorized(opts *bind.CallOpts, sender common.Address) ([]common.Address, error) {
	var out []interface{}
	if err := c.contract.Call(opts, &out, "allAuthorized", sender); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address), nil
}

// CallBatched executes the given calls in order within one transaction.
func (c *Caller) CallBatched(opts *bind.TransactOpts, calls []Call) (*types.Transaction, error) {
	return c.contract.Transact(opts, "callBatched", calls)
}
