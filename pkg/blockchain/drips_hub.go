package blockchain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// dripsHubABI covers the DripsHub functions the SDK calls.
const dripsHubABI = `[
	{"type":"function","name":"cycleSecs","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint32"}]},
	{"type":"function","name":"receivableDripsCycles","stateMutability":"view","inputs":[{"name":"userId","type":"uint256"},{"name":"erc20","type":"address"}],"outputs":[{"name":"cycles","type":"uint32"}]},
	{"type":"function","name":"dripsState","stateMutability":"view","inputs":[{"name":"userId","type":"uint256"},{"name":"erc20","type":"address"}],"outputs":[{"name":"dripsHash","type":"bytes32"},{"name":"dripsHistoryHash","type":"bytes32"},{"name":"updateTime","type":"uint32"},{"name":"balance","type":"uint128"},{"name":"maxEnd","type":"uint32"}]},
	{"type":"function","name":"splittable","stateMutability":"view","inputs":[{"name":"userId","type":"uint256"},{"name":"erc20","type":"address"}],"outputs":[{"name":"amt","type":"uint128"}]},
	{"type":"function","name":"collectable","stateMutability":"view","inputs":[{"name":"userId","type":"uint256"},{"name":"erc20","type":"address"}],"outputs":[{"name":"amt","type":"uint128"}]},
	{"type":"function","name":"totalBalance","stateMutability":"view","inputs":[{"name":"erc20","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"receiveDrips","stateMutability":"nonpayable","inputs":[{"name":"userId","type":"uint256"},{"name":"erc20","type":"address"},{"name":"maxCycles","type":"uint32"}],"outputs":[{"name":"receivedAmt","type":"uint128"}]},
	{"type":"function","name":"split","stateMutability":"nonpayable","inputs":[{"name":"userId","type":"uint256"},{"name":"erc20","type":"address"},{"name":"currReceivers","type":"tuple[]","components":[{"name":"userId","type":"uint256"},{"name":"weight","type":"uint32"}]}],"outputs":[{"name":"collectableAmt","type":"uint128"},{"name":"splitAmt","type":"uint128"}]}
]`

// DripsState is the hub's stored streaming state for one user and asset.
type DripsState struct {
	DripsHash        [32]byte
	DripsHistoryHash [32]byte
	UpdateTime       uint32
	Balance          *big.Int
	MaxEnd           uint32
}

// DripsHub is a typed binding of the hub/ledger contract tracking streaming
// balances, splits, and collectable funds.
type DripsHub struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

// NewDripsHub binds the DripsHub contract at address to backend.
func NewDripsHub(address common.Address, backend bind.ContractBackend) (*DripsHub, error) {
	parsed, err := abi.JSON(strings.NewReader(dripsHubABI))
	if err != nil {
		return nil, err
	}
	return &DripsHub{
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

// Address returns the bound contract address.
func (h *DripsHub) Address() common.Address {
	return h.address
}

// CycleSecs returns the funding cycle length in seconds.
func (h *DripsHub) CycleSecs(opts *bind.CallOpts) (uint32, error) {
	var out []interface{}
	if err := h.contract.Call(opts, &out, "cycleSecs"); err != nil {
		return 0, err
	}
	return *abi.ConvertType(out[0], new(uint32)).(*uint32), nil
}

// ReceivableDripsCycles returns the count of cycles with funds receivable
// by the user for the asset.
func (h *DripsHub) ReceivableDripsCycles(opts *bind.CallOpts, userID *big.Int, erc20 common.Address) (uint32, error) {
	var out []interface{}
	if err := h.contract.Call(opts, &out, "receivableDripsCycles", userID, erc20); err != nil {
		return 0, err
	}
	return *abi.ConvertType(out[0], new(uint32)).(*uint32), nil
}

// DripsState returns the user's current streaming state for the asset.
func (h *DripsHub) DripsState(opts *bind.CallOpts, userID *big.Int, erc20 common.Address) (DripsState, error) {
	var out []interface{}
	if err := h.contract.Call(opts, &out, "dripsState", userID, erc20); err != nil {
		return DripsState{}, err
	}
	return DripsState{
		DripsHash:        *abi.ConvertType(out[0], new([32]byte)).(*[32]byte),
		DripsHistoryHash: *abi.ConvertType(out[1], new([32]byte)).(*[32]byte),
		UpdateTime:       *abi.ConvertType(out[2], new(uint32)).(*uint32),
		Balance:          *abi.ConvertType(out[3], new(*big.Int)).(**big.Int),
		MaxEnd:           *abi.ConvertType(out[4], new(uint32)).(*uint32),
	}, nil
}

// Splittable returns the user's received but not yet split amount of the asset.
func (h *DripsHub) Splittable(opts *bind.CallOpts, userID *big.Int, erc20 common.Address) (*big.Int, error) {
	var out []interface{}
	if err := h.contract.Call(opts, &out, "splittable", userID, erc20); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// Collectable returns the user's already split, collectable amount of the asset.
func (h *DripsHub) Collectable(opts *bind.CallOpts, userID *big.Int, erc20 common.Address) (*big.Int, error) {
	var out []interface{}
	if err := h.contract.Call(opts, &out, "collectable", userID, erc20); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// TotalBalance returns the total amount of the asset held by the hub.
func (h *DripsHub) TotalBalance(opts *bind.CallOpts, erc20 common.Address) (*big.Int, error) {
	var out []interface{}
	if err := h.contract.Call(opts, &out, "totalBalance", erc20); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// ReceiveDrips receives up to maxCycles cycles of funds streamed to the user.
func (h *DripsHub) ReceiveDrips(opts *bind.TransactOpts, userID *big.Int, erc20 common.Address, maxCycles uint32) (*types.Transaction, error) {
	return h.contract.Transact(opts, "receiveDrips", userID, erc20, maxCycles)
}

// Split splits the user's received funds among the given receivers, which
// must match the user's current on-chain splits configuration.
func (h *DripsHub) Split(opts *bind.TransactOpts, userID *big.Int, erc20 common.Address, currReceivers []SplitsReceiver) (*types.Transaction, error) {
	return h.contract.Transact(opts, "split", userID, erc20, currReceivers)
}

// PackCalldata ABI-encodes a call to the named hub function, for use inside
// a Caller batch.
func (h *DripsHub) PackCalldata(method string, args ...any) ([]byte, error) {
	return h.abi.Pack(method, args...)
}
