package drips

import (
	"math/big"

	"github.com/drips-network/drips-sdk-go/pkg/errs"
	"github.com/drips-network/drips-sdk-go/pkg/model"
)

// Bit widths of the fields of a packed streaming configuration, most
// significant first: dripId | amtPerSec | start | duration. The shift of
// each field is derived from the widths below it so the layout stays
// auditable in one place.
const (
	dripIDBits    = 32
	amtPerSecBits = 160
	startBits     = 32
	durationBits  = 32

	durationShift  = 0
	startShift     = durationShift + durationBits
	amtPerSecShift = startShift + startBits
	dripIDShift    = amtPerSecShift + amtPerSecBits

	configBits = dripIDShift + dripIDBits
)

// fieldMask returns the all-ones mask for a field of the given width.
func fieldMask(bits uint) *big.Int {
	mask := new(big.Int).Lsh(big.NewInt(1), bits)
	return mask.Sub(mask, big.NewInt(1))
}

// PackConfig encodes a streaming configuration into its packed 256-bit
// on-chain form. Every field is checked against its declared bit width;
// a field that does not fit fails with an invalid-argument error naming it.
// Equal inputs always produce equal outputs.
func PackConfig(c model.DripsReceiverConfig) (*big.Int, error) {
	if c.AmtPerSec == nil {
		return nil, errs.MissingArgument("config.amountPerSec")
	}
	if c.AmtPerSec.Sign() < 0 {
		return nil, errs.InvalidArgument("config.amountPerSec", c.AmtPerSec.String(), "must not be negative")
	}
	if c.AmtPerSec.BitLen() > amtPerSecBits {
		return nil, errs.InvalidArgument("config.amountPerSec", c.AmtPerSec.String(), "does not fit in 160 bits")
	}
	if c.DripID > fieldMask(dripIDBits).Uint64() {
		return nil, errs.InvalidArgument("config.dripId", c.DripID, "does not fit in 32 bits")
	}
	if c.Start > fieldMask(startBits).Uint64() {
		return nil, errs.InvalidArgument("config.start", c.Start, "does not fit in 32 bits")
	}
	if c.Duration > fieldMask(durationBits).Uint64() {
		return nil, errs.InvalidArgument("config.duration", c.Duration, "does not fit in 32 bits")
	}

	packed := new(big.Int).Lsh(new(big.Int).SetUint64(c.DripID), dripIDShift)
	packed.Or(packed, new(big.Int).Lsh(c.AmtPerSec, amtPerSecShift))
	packed.Or(packed, new(big.Int).Lsh(new(big.Int).SetUint64(c.Start), startShift))
	packed.Or(packed, new(big.Int).SetUint64(c.Duration))
	return packed, nil
}

// UnpackConfig decodes a packed 256-bit configuration word back into its
// structured form. It is the exact inverse of PackConfig: for every valid
// configuration c, UnpackConfig(PackConfig(c)) == c.
func UnpackConfig(packed *big.Int) (model.DripsReceiverConfig, error) {
	if packed == nil {
		return model.DripsReceiverConfig{}, errs.MissingArgument("config")
	}
	if packed.Sign() < 0 {
		return model.DripsReceiverConfig{}, errs.InvalidArgument("config", packed.String(), "must not be negative")
	}
	if packed.BitLen() > configBits {
		return model.DripsReceiverConfig{}, errs.InvalidArgument("config", packed.String(), "does not fit in 256 bits")
	}

	extract := func(shift, bits uint) *big.Int {
		v := new(big.Int).Rsh(packed, shift)
		return v.And(v, fieldMask(bits))
	}

	return model.DripsReceiverConfig{
		DripID:    extract(dripIDShift, dripIDBits).Uint64(),
		AmtPerSec: extract(amtPerSecShift, amtPerSecBits),
		Start:     extract(startShift, startBits).Uint64(),
		Duration:  extract(durationShift, durationBits).Uint64(),
	}, nil
}
