// Package model defines the value objects exchanged with the Drips
// contracts: streaming receiver configurations, drips and splits receiver
// entries, user metadata, and the protocol-wide limits the contracts
// enforce. All types are immutable value objects scoped to a single call.
package model

import "math/big"

// Protocol limits enforced by the on-chain contracts. The SDK validates
// against them locally so that an oversized argument never reaches a node.
const (
	// MaxDripsReceivers is the maximum number of drips receivers a single
	// user can configure per asset.
	MaxDripsReceivers = 100
	// MaxSplitsReceivers is the maximum number of splits receivers a single
	// user can configure.
	MaxSplitsReceivers = 200
	// TotalSplitsWeight is the denominator of splits weights. The weights of
	// a receiver set must not sum above it.
	TotalSplitsWeight = 1_000_000
	// AmtPerSecExtraDecimals is the number of extra decimals of precision
	// the contracts apply to amount-per-second values.
	AmtPerSecExtraDecimals = 9
)

// AmtPerSecMultiplier returns the fixed-point multiplier (10^9) applied to
// amount-per-second values. A fresh value is returned on every call so
// callers can mutate it freely.
func AmtPerSecMultiplier() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(AmtPerSecExtraDecimals), nil)
}

// DripsReceiverConfig is the unpacked form of a streaming configuration.
// DripID, Start and Duration must fit in 32 bits each and AmtPerSec in
// 160 bits; the codec rejects anything wider.
type DripsReceiverConfig struct {
	// DripID identifies the stream among the sender's streams.
	DripID uint64
	// AmtPerSec is the streamed amount per second, in the asset's smallest
	// unit scaled by AmtPerSecExtraDecimals extra decimals.
	AmtPerSec *big.Int
	// Start is the stream start as a Unix timestamp, 0 meaning "when set".
	Start uint64
	// Duration is the stream duration in seconds, 0 meaning "until funds
	// run out".
	Duration uint64
}

// DripsReceiver is a streaming recipient entry as submitted on-chain:
// a user ID and the packed 256-bit configuration word.
type DripsReceiver struct {
	// UserID is the recipient's user ID as a decimal string.
	UserID string `json:"userId"`
	// Config is the packed streaming configuration.
	Config *big.Int `json:"config"`
}

// SplitsReceiver is a splits recipient entry: a user ID and the weight of
// the recipient's share out of TotalSplitsWeight.
type SplitsReceiver struct {
	// UserID is the recipient's user ID as a decimal string.
	UserID string `json:"userId"`
	// Weight is the recipient's share weight. Must be positive and the
	// weights of a set must not sum above TotalSplitsWeight.
	Weight uint32 `json:"weight"`
}

// UserMetadata is a key-value entry emitted on-chain for off-chain
// consumers (typically a pointer to a metadata blob in IPFS).
type UserMetadata struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
