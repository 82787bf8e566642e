package blockchain

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// nftDriverABI covers the NFTDriver functions the SDK calls.
const nftDriverABI = `[
	{"type":"function","name":"safeMint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"userMetadata","type":"tuple[]","components":[{"name":"key","type":"bytes32"},{"name":"value","type":"bytes"}]}],"outputs":[{"name":"tokenId","type":"uint256"}]},
	{"type":"function","name":"collect","stateMutability":"nonpayable","inputs":[{"name":"tokenId","type":"uint256"},{"name":"erc20","type":"address"},{"name":"transferTo","type":"address"}],"outputs":[{"name":"amt","type":"uint128"}]},
	{"type":"function","name":"give","stateMutability":"nonpayable","inputs":[{"name":"tokenId","type":"uint256"},{"name":"receiver","type":"uint256"},{"name":"erc20","type":"address"},{"name":"amt","type":"uint128"}],"outputs":[]},
	{"type":"function","name":"setSplits","stateMutability":"nonpayable","inputs":[{"name":"tokenId","type":"uint256"},{"name":"receivers","type":"tuple[]","components":[{"name":"userId","type":"uint256"},{"name":"weight","type":"uint32"}]}],"outputs":[]},
	{"type":"function","name":"setDrips","stateMutability":"nonpayable","inputs":[{"name":"tokenId","type":"uint256"},{"name":"erc20","type":"address"},{"name":"currReceivers","type":"tuple[]","components":[{"name":"userId","type":"uint256"},{"name":"config","type":"uint256"}]},{"name":"balanceDelta","type":"int128"},{"name":"newReceivers","type":"tuple[]","components":[{"name":"userId","type":"uint256"},{"name":"config","type":"uint256"}]},{"name":"transferTo","type":"address"}],"outputs":[{"name":"realBalanceDelta","type":"int128"}]},
	{"type":"function","name":"emitUserMetadata","stateMutability":"nonpayable","inputs":[{"name":"tokenId","type":"uint256"},{"name":"userMetadata","type":"tuple[]","components":[{"name":"key","type":"bytes32"},{"name":"value","type":"bytes"}]}],"outputs":[]},
	{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":true}]}
]`

// transferTopic is the topic hash of the ERC-721 Transfer event.
var transferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// NFTDriver is a typed binding of the NFT-based driver contract. Each minted
// token is a user ID the token holder acts on behalf of.
type NFTDriver struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

// NewNFTDriver binds the NFTDriver contract at address to backend.
func NewNFTDriver(address common.Address, backend bind.ContractBackend) (*NFTDriver, error) {
	parsed, err := abi.JSON(strings.NewReader(nftDriverABI))
	if err != nil {
		return nil, err
	}
	return &NFTDriver{
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

// Address returns the bound contract address.
func (d *NFTDriver) Address() common.Address {
	return d.address
}

// SafeMint mints a new token (a new user ID) to the given address and emits
// the metadata entries for it. The minted token ID is available from the
// receipt via TokenIDFromMintReceipt.
func (d *NFTDriver) SafeMint(opts *bind.TransactOpts, to common.Address, userMetadata []UserMetadata) (*types.Transaction, error) {
	return d.contract.Transact(opts, "safeMint", to, userMetadata)
}

// Collect transfers the token's collected funds of erc20 to transferTo.
func (d *NFTDriver) Collect(opts *bind.TransactOpts, tokenID *big.Int, erc20, transferTo common.Address) (*types.Transaction, error) {
	return d.contract.Transact(opts, "collect", tokenID, erc20, transferTo)
}

// Give transfers amt of erc20 from the token's user ID to the receiver.
func (d *NFTDriver) Give(opts *bind.TransactOpts, tokenID, receiver *big.Int, erc20 common.Address, amt *big.Int) (*types.Transaction, error) {
	return d.contract.Transact(opts, "give", tokenID, receiver, erc20, amt)
}

// SetSplits replaces the token's splits configuration. Receivers must be
// sorted by user ID and unique.
func (d *NFTDriver) SetSplits(opts *bind.TransactOpts, tokenID *big.Int, receivers []SplitsReceiver) (*types.Transaction, error) {
	return d.contract.Transact(opts, "setSplits", tokenID, receivers)
}

// SetDrips replaces the token's drips configuration for erc20.
func (d *NFTDriver) SetDrips(opts *bind.TransactOpts, tokenID *big.Int, erc20 common.Address, currReceivers []DripsReceiver, balanceDelta *big.Int, newReceivers []DripsReceiver, transferTo common.Address) (*types.Transaction, error) {
	return d.contract.Transact(opts, "setDrips", tokenID, erc20, currReceivers, balanceDelta, newReceivers, transferTo)
}

// EmitUserMetadata emits the given metadata entries for the token's user ID.
func (d *NFTDriver) EmitUserMetadata(opts *bind.TransactOpts, tokenID *big.Int, userMetadata []UserMetadata) (*types.Transaction, error) {
	return d.contract.Transact(opts, "emitUserMetadata", tokenID, userMetadata)
}

// TokenIDFromMintReceipt extracts the minted token ID from a SafeMint
// receipt by locating the driver's ERC-721 Transfer event from the zero
// address. Returns an error when the receipt carries no such event.
func (d *NFTDriver) TokenIDFromMintReceipt(receipt *types.Receipt) (*big.Int, error) {
	if receipt == nil {
		return nil, errors.New("nil receipt")
	}
	for _, lg := range receipt.Logs {
		if lg.Address != d.address || len(lg.Topics) != 4 {
			continue
		}
		if lg.Topics[0] != transferTopic || lg.Topics[1] != (common.Hash{}) {
			continue
		}
		return new(big.Int).SetBytes(lg.Topics[3].Bytes()), nil
	}
	return nil, errors.New("no mint Transfer event in receipt")
}

// PackCalldata ABI-encodes a call to the named driver function, for use
// inside a Caller batch.
func (d *NFTDriver) PackCalldata(method string, args ...any) ([]byte, error) {
	return d.abi.Pack(method, args...)
}
