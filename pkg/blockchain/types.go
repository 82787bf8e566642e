package blockchain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Wire shapes of the tuple arguments the contracts accept. Field names must
// match the ABI component names for argument packing to work.

// SplitsReceiver is the on-chain shape of a splits receiver entry.
type SplitsReceiver struct {
	UserId *big.Int
	Weight uint32
}

// DripsReceiver is the on-chain shape of a drips receiver entry: user ID
// plus the packed 256-bit streaming configuration.
type DripsReceiver struct {
	UserId *big.Int
	Config *big.Int
}

// UserMetadata is the on-chain shape of an emitted metadata entry.
type UserMetadata struct {
	Key   [32]byte
	Value []byte
}

// Call is a single delegated call inside a Caller batch.
type Call struct {
	To    common.Address
	Data  []byte
	Value *big.Int
}
