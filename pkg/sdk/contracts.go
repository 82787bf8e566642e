package sdk

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/drips-network/drips-sdk-go/pkg/blockchain"
)

// The clients below depend on one interface per contract, with one method
// per on-chain function. The pkg/blockchain bindings implement them in
// production; tests substitute hand-written fakes.

type addressDriverContract interface {
	Address() common.Address
	CalcUserId(opts *bind.CallOpts, userAddr common.Address) (*big.Int, error)
	Collect(opts *bind.TransactOpts, erc20, transferTo common.Address) (*types.Transaction, error)
	Give(opts *bind.TransactOpts, receiver *big.Int, erc20 common.Address, amt *big.Int) (*types.Transaction, error)
	SetSplits(opts *bind.TransactOpts, receivers []blockchain.SplitsReceiver) (*types.Transaction, error)
	SetDrips(opts *bind.TransactOpts, erc20 common.Address, currReceivers []blockchain.DripsReceiver, balanceDelta *big.Int, newReceivers []blockchain.DripsReceiver, transferTo common.Address) (*types.Transaction, error)
	EmitUserMetadata(opts *bind.TransactOpts, userMetadata []blockchain.UserMetadata) (*types.Transaction, error)
}

type nftDriverContract interface {
	Address() common.Address
	SafeMint(opts *bind.TransactOpts, to common.Address, userMetadata []blockchain.UserMetadata) (*types.Transaction, error)
	Collect(opts *bind.TransactOpts, tokenID *big.Int, erc20, transferTo common.Address) (*types.Transaction, error)
	Give(opts *bind.TransactOpts, tokenID, receiver *big.Int, erc20 common.Address, amt *big.Int) (*types.Transaction, error)
	SetSplits(opts *bind.TransactOpts, tokenID *big.Int, receivers []blockchain.SplitsReceiver) (*types.Transaction, error)
	SetDrips(opts *bind.TransactOpts, tokenID *big.Int, erc20 common.Address, currReceivers []blockchain.DripsReceiver, balanceDelta *big.Int, newReceivers []blockchain.DripsReceiver, transferTo common.Address) (*types.Transaction, error)
	EmitUserMetadata(opts *bind.TransactOpts, tokenID *big.Int, userMetadata []blockchain.UserMetadata) (*types.Transaction, error)
	TokenIDFromMintReceipt(receipt *types.Receipt) (*big.Int, error)
}

type dripsHubContract interface {
	CycleSecs(opts *bind.CallOpts) (uint32, error)
	ReceivableDripsCycles(opts *bind.CallOpts, userID *big.Int, erc20 common.Address) (uint32, error)
	DripsState(opts *bind.CallOpts, userID *big.Int, erc20 common.Address) (blockchain.DripsState, error)
	Splittable(opts *bind.CallOpts, userID *big.Int, erc20 common.Address) (*big.Int, error)
	Collectable(opts *bind.CallOpts, userID *big.Int, erc20 common.Address) (*big.Int, error)
	TotalBalance(opts *bind.CallOpts, erc20 common.Address) (*big.Int, error)
	ReceiveDrips(opts *bind.TransactOpts, userID *big.Int, erc20 common.Address, maxCycles uint32) (*types.Transaction, error)
	Split(opts *bind.TransactOpts, userID *big.Int, erc20 common.Address, currReceivers []blockchain.SplitsReceiver) (*types.Transaction, error)
}

type callerContract interface {
	Authorize(opts *bind.TransactOpts, user common.Address) (*types.Transaction, error)
	Unauthorize(opts *bind.TransactOpts, user common.Address) (*types.Transaction, error)
	IsAuthorized(opts *bind.CallOpts, sender, user common.Address) (bool, error)
	AllAuthorized(opts *bind.CallOpts, sender common.Address) ([]common.Address, error)
	CallBatched(opts *bind.TransactOpts, calls []blockchain.Call) (*types.Transaction, error)
}

type erc20Contract interface {
	Allowance(opts *bind.CallOpts, owner, spender common.Address) (*big.Int, error)
	Approve(opts *bind.TransactOpts, spender common.Address, amount *big.Int) (*types.Transaction, error)
	BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error)
}

// erc20Factory binds an ERC-20 token contract at the given address.
type erc20Factory func(addr common.Address) (erc20Contract, error)

// txOptsFunc builds transact opts for one submission, or fails when the SDK
// has no signing key configured.
type txOptsFunc func(ctx context.Context) (*bind.TransactOpts, error)
