// Package drips implements the protocol-level algorithms of the SDK:
// the codec between structured streaming configurations and their packed
// 256-bit on-chain form, the deterministic sort/dedup normalization of
// receiver lists, and the argument validators shared by every client.
//
// # Packed configurations
//
// A streaming configuration is stored on-chain as one uint256 laid out,
// most significant bits first, as
//
//	dripId (32 bits) | amtPerSec (160 bits) | start (32 bits) | duration (32 bits)
//
// PackConfig and UnpackConfig convert between the two forms bit-exactly;
// round-tripping any valid configuration returns it unchanged.
//
// # Receiver normalization
//
// The contracts require receiver lists to be sorted by user ID and unique,
// both as a correctness precondition and as a gas optimization.
// NormalizeSplits and NormalizeDripsReceivers order entries by their user
// ID compared as an unsigned integer and drop later duplicates, keeping
// the first occurrence from the input. Both are pure functions; callers
// always receive a fresh slice.
package drips
