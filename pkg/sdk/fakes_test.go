package sdk

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/drips-network/drips-sdk-go/pkg/blockchain"
)

// errReverted stands in for any contract/transport failure in tests.
var errReverted = errors.New("execution reverted")

func newTestTx() *types.Transaction {
	return types.NewTx(&types.LegacyTx{Nonce: 7})
}

func testTxOpts(ctx context.Context) (*bind.TransactOpts, error) {
	return &bind.TransactOpts{Context: ctx}, nil
}

// fakeAddressDriver records the last arguments of each call and fails every
// method with err when it is set.
type fakeAddressDriver struct {
	addr common.Address
	err  error

	calcUserID *big.Int

	gotCalcAddr     common.Address
	gotCallCtx      context.Context
	gotSplits       []blockchain.SplitsReceiver
	gotCurrDrips    []blockchain.DripsReceiver
	gotNewDrips     []blockchain.DripsReceiver
	gotBalanceDelta *big.Int
	gotMetadata     []blockchain.UserMetadata
	gotGiveReceiver *big.Int
	gotGiveAmt      *big.Int
}

func (f *fakeAddressDriver) Address() common.Address { return f.addr }

func (f *fakeAddressDriver) CalcUserId(opts *bind.CallOpts, userAddr common.Address) (*big.Int, error) {
	f.gotCalcAddr = userAddr
	f.gotCallCtx = opts.Context
	if f.err != nil {
		return nil, f.err
	}
	return f.calcUserID, nil
}

func (f *fakeAddressDriver) Collect(opts *bind.TransactOpts, erc20, transferTo common.Address) (*types.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

func (f *fakeAddressDriver) Give(opts *bind.TransactOpts, receiver *big.Int, erc20 common.Address, amt *big.Int) (*types.Transaction, error) {
	f.gotGiveReceiver = receiver
	f.gotGiveAmt = amt
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

func (f *fakeAddressDriver) SetSplits(opts *bind.TransactOpts, receivers []blockchain.SplitsReceiver) (*types.Transaction, error) {
	f.gotSplits = receivers
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

func (f *fakeAddressDriver) SetDrips(opts *bind.TransactOpts, erc20 common.Address, currReceivers []blockchain.DripsReceiver, balanceDelta *big.Int, newReceivers []blockchain.DripsReceiver, transferTo common.Address) (*types.Transaction, error) {
	f.gotCurrDrips = currReceivers
	f.gotNewDrips = newReceivers
	f.gotBalanceDelta = balanceDelta
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

func (f *fakeAddressDriver) EmitUserMetadata(opts *bind.TransactOpts, userMetadata []blockchain.UserMetadata) (*types.Transaction, error) {
	f.gotMetadata = userMetadata
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

// fakeNFTDriver mirrors fakeAddressDriver for the token-keyed driver.
type fakeNFTDriver struct {
	addr common.Address
	err  error

	mintTokenID *big.Int

	gotMintTo    common.Address
	gotTokenID   *big.Int
	gotSplits    []blockchain.SplitsReceiver
	gotCurrDrips []blockchain.DripsReceiver
	gotNewDrips  []blockchain.DripsReceiver
	gotMetadata  []blockchain.UserMetadata
}

func (f *fakeNFTDriver) Address() common.Address { return f.addr }

func (f *fakeNFTDriver) SafeMint(opts *bind.TransactOpts, to common.Address, userMetadata []blockchain.UserMetadata) (*types.Transaction, error) {
	f.gotMintTo = to
	f.gotMetadata = userMetadata
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

func (f *fakeNFTDriver) Collect(opts *bind.TransactOpts, tokenID *big.Int, erc20, transferTo common.Address) (*types.Transaction, error) {
	f.gotTokenID = tokenID
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

func (f *fakeNFTDriver) Give(opts *bind.TransactOpts, tokenID, receiver *big.Int, erc20 common.Address, amt *big.Int) (*types.Transaction, error) {
	f.gotTokenID = tokenID
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

func (f *fakeNFTDriver) SetSplits(opts *bind.TransactOpts, tokenID *big.Int, receivers []blockchain.SplitsReceiver) (*types.Transaction, error) {
	f.gotTokenID = tokenID
	f.gotSplits = receivers
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

func (f *fakeNFTDriver) SetDrips(opts *bind.TransactOpts, tokenID *big.Int, erc20 common.Address, currReceivers []blockchain.DripsReceiver, balanceDelta *big.Int, newReceivers []blockchain.DripsReceiver, transferTo common.Address) (*types.Transaction, error) {
	f.gotTokenID = tokenID
	f.gotCurrDrips = currReceivers
	f.gotNewDrips = newReceivers
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

func (f *fakeNFTDriver) EmitUserMetadata(opts *bind.TransactOpts, tokenID *big.Int, userMetadata []blockchain.UserMetadata) (*types.Transaction, error) {
	f.gotTokenID = tokenID
	f.gotMetadata = userMetadata
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

func (f *fakeNFTDriver) TokenIDFromMintReceipt(receipt *types.Receipt) (*big.Int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.mintTokenID, nil
}

type fakeDripsHub struct {
	err error

	cycleSecs   uint32
	cycles      uint32
	state       blockchain.DripsState
	splittable  *big.Int
	collectable *big.Int
	total       *big.Int

	gotUserID    *big.Int
	gotMaxCycles uint32
	gotSplits    []blockchain.SplitsReceiver
}

func (f *fakeDripsHub) CycleSecs(opts *bind.CallOpts) (uint32, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.cycleSecs, nil
}

func (f *fakeDripsHub) ReceivableDripsCycles(opts *bind.CallOpts, userID *big.Int, erc20 common.Address) (uint32, error) {
	f.gotUserID = userID
	if f.err != nil {
		return 0, f.err
	}
	return f.cycles, nil
}

func (f *fakeDripsHub) DripsState(opts *bind.CallOpts, userID *big.Int, erc20 common.Address) (blockchain.DripsState, error) {
	f.gotUserID = userID
	if f.err != nil {
		return blockchain.DripsState{}, f.err
	}
	return f.state, nil
}

func (f *fakeDripsHub) Splittable(opts *bind.CallOpts, userID *big.Int, erc20 common.Address) (*big.Int, error) {
	f.gotUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.splittable, nil
}

func (f *fakeDripsHub) Collectable(opts *bind.CallOpts, userID *big.Int, erc20 common.Address) (*big.Int, error) {
	f.gotUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.collectable, nil
}

func (f *fakeDripsHub) TotalBalance(opts *bind.CallOpts, erc20 common.Address) (*big.Int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.total, nil
}

func (f *fakeDripsHub) ReceiveDrips(opts *bind.TransactOpts, userID *big.Int, erc20 common.Address, maxCycles uint32) (*types.Transaction, error) {
	f.gotUserID = userID
	f.gotMaxCycles = maxCycles
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

func (f *fakeDripsHub) Split(opts *bind.TransactOpts, userID *big.Int, erc20 common.Address, currReceivers []blockchain.SplitsReceiver) (*types.Transaction, error) {
	f.gotUserID = userID
	f.gotSplits = currReceivers
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

type fakeCaller struct {
	err error

	authorized bool
	all        []common.Address

	gotUser    common.Address
	gotSender  common.Address
	gotCalls   []blockchain.Call
	gotCallCtx context.Context
}

func (f *fakeCaller) Authorize(opts *bind.TransactOpts, user common.Address) (*types.Transaction, error) {
	f.gotUser = user
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

func (f *fakeCaller) Unauthorize(opts *bind.TransactOpts, user common.Address) (*types.Transaction, error) {
	f.gotUser = user
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

func (f *fakeCaller) IsAuthorized(opts *bind.CallOpts, sender, user common.Address) (bool, error) {
	f.gotSender = sender
	f.gotUser = user
	f.gotCallCtx = opts.Context
	if f.err != nil {
		return false, f.err
	}
	return f.authorized, nil
}

func (f *fakeCaller) AllAuthorized(opts *bind.CallOpts, sender common.Address) ([]common.Address, error) {
	f.gotSender = sender
	if f.err != nil {
		return nil, f.err
	}
	return f.all, nil
}

func (f *fakeCaller) CallBatched(opts *bind.TransactOpts, calls []blockchain.Call) (*types.Transaction, error) {
	f.gotCalls = calls
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

type fakeERC20 struct {
	err error

	allowance *big.Int
	balance   *big.Int

	gotSpender common.Address
	gotAmount  *big.Int
}

func (f *fakeERC20) Allowance(opts *bind.CallOpts, owner, spender common.Address) (*big.Int, error) {
	f.gotSpender = spender
	if f.err != nil {
		return nil, f.err
	}
	return f.allowance, nil
}

func (f *fakeERC20) Approve(opts *bind.TransactOpts, spender common.Address, amount *big.Int) (*types.Transaction, error) {
	f.gotSpender = spender
	f.gotAmount = amount
	if f.err != nil {
		return nil, f.err
	}
	return newTestTx(), nil
}

func (f *fakeERC20) BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.balance, nil
}
