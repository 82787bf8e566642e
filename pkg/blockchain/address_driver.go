package blockchain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// addressDriverABI covers the AddressDriver functions the SDK calls.
const addressDriverABI = `[
	{"type":"function","name":"calcUserId","stateMutability":"view","inputs":[{"name":"userAddr","type":"address"}],"outputs":[{"name":"userId","type":"uint256"}]},
	{"type":"function","name":"collect","stateMutability":"nonpayable","inputs":[{"name":"erc20","type":"address"},{"name":"transferTo","type":"address"}],"outputs":[{"name":"amt","type":"uint128"}]},
	{"type":"function","name":"give","stateMutability":"nonpayable","inputs":[{"name":"receiver","type":"uint256"},{"name":"erc20","type":"address"},{"name":"amt","type":"uint128"}],"outputs":[]},
	{"type":"function","name":"setSplits","stateMutability":"nonpayable","inputs":[{"name":"receivers","type":"tuple[]","components":[{"name":"userId","type":"uint256"},{"name":"weight","type":"uint32"}]}],"outputs":[]},
	{"type":"function","name":"setDrips","stateMutability":"nonpayable","inputs":[{"name":"erc20","type":"address"},{"name":"currReceivers","type":"tuple[]","components":[{"name":"userId","type":"uint256"},{"name":"config","type":"uint256"}]},{"name":"balanceDelta","type":"int128"},{"name":"newReceivers","type":"tuple[]","components":[{"name":"userId","type":"uint256"},{"name":"config","type":"uint256"}]},{"name":"transferTo","type":"address"}],"outputs":[{"name":"realBalanceDelta","type":"int128"}]},
	{"type":"function","name":"emitUserMetadata","stateMutability":"nonpayable","inputs":[{"name":"userMetadata","type":"tuple[]","components":[{"name":"key","type":"bytes32"},{"name":"value","type":"bytes"}]}],"outputs":[]}
]`

// AddressDriver is a typed binding of the address-based driver contract.
// It authorizes actions on behalf of the user owning the calling address.
type AddressDriver struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

// NewAddressDriver binds the AddressDriver contract at address to backend.
func NewAddressDriver(address common.Address, backend bind.ContractBackend) (*AddressDriver, error) {
	parsed, err := abi.JSON(strings.NewReader(addressDriverABI))
	if err != nil {
		return nil, err
	}
	return &AddressDriver{
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

// Address returns the bound contract address.
func (d *AddressDriver) Address() common.Address {
	return d.address
}

// CalcUserId returns the user ID the driver derives for userAddr.
func (d *AddressDriver) CalcUserId(opts *bind.CallOpts, userAddr common.Address) (*big.Int, error) {
	var out []interface{}
	if err := d.contract.Call(opts, &out, "calcUserId", userAddr); err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// Collect transfers the caller's collected funds of erc20 to transferTo.
func (d *AddressDriver) Collect(opts *bind.TransactOpts, erc20, transferTo common.Address) (*types.Transaction, error) {
	return d.contract.Transact(opts, "collect", erc20, transferTo)
}

// Give transfers amt of erc20 from the caller to the given receiver user ID.
func (d *AddressDriver) Give(opts *bind.TransactOpts, receiver *big.Int, erc20 common.Address, amt *big.Int) (*types.Transaction, error) {
	return d.contract.Transact(opts, "give", receiver, erc20, amt)
}

// SetSplits replaces the caller's splits configuration. Receivers must be
// sorted by user ID and unique.
func (d *AddressDriver) SetSplits(opts *bind.TransactOpts, receivers []SplitsReceiver) (*types.Transaction, error) {
	return d.contract.Transact(opts, "setSplits", receivers)
}

// SetDrips replaces the caller's drips configuration for erc20. The current
// receiver list must match the on-chain state and both lists must be sorted
// by user ID and unique.
func (d *AddressDriver) SetDrips(opts *bind.TransactOpts, erc20 common.Address, currReceivers []DripsReceiver, balanceDelta *big.Int, newReceivers []DripsReceiver, transferTo common.Address) (*types.Transaction, error) {
	return d.contract.Transact(opts, "setDrips", erc20, currReceivers, balanceDelta, newReceivers, transferTo)
}

// EmitUserMetadata emits the given metadata entries for the caller's user ID.
func (d *AddressDriver) EmitUserMetadata(opts *bind.TransactOpts, userMetadata []UserMetadata) (*types.Transaction, error) {
	return d.contract.Transact(opts, "emitUserMetadata", userMetadata)
}

// PackCalldata ABI-encodes a call to the named driver function, for use
// inside a Caller batch.
func (d *AddressDriver) PackCalldata(method string, args ...any) ([]byte, error) {
	return d.abi.Pack(method, args...)
}
