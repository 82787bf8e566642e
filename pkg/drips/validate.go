package drips

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/drips-network/drips-sdk-go/pkg/errs"
	"github.com/drips-network/drips-sdk-go/pkg/model"
)

// ParseUserID parses a decimal-string user ID into a big integer. The param
// name is used in the returned error when the value is absent, not a
// decimal number, or negative.
func ParseUserID(param, userID string) (*big.Int, error) {
	if userID == "" {
		return nil, errs.MissingArgument(param)
	}
	id, ok := new(big.Int).SetString(userID, 10)
	if !ok {
		return nil, errs.InvalidArgument(param, userID, "not a decimal integer")
	}
	if id.Sign() < 0 {
		return nil, errs.InvalidArgument(param, userID, "must not be negative")
	}
	return id, nil
}

// ValidateAddress checks that addr is a well-formed hex Ethereum address.
func ValidateAddress(param, addr string) error {
	if addr == "" {
		return errs.MissingArgument(param)
	}
	if !common.IsHexAddress(addr) {
		return errs.InvalidArgument(param, addr, "not a valid address")
	}
	return nil
}

// ValidateAmount checks that amount is present and not negative.
func ValidateAmount(param string, amount *big.Int) error {
	if amount == nil {
		return errs.MissingArgument(param)
	}
	if amount.Sign() < 0 {
		return errs.InvalidArgument(param, amount.String(), "must not be negative")
	}
	return nil
}

// ValidateSplitsReceivers checks a splits receiver list before it is
// normalized and submitted: the list must be present (nil means missing,
// an empty list means "clear"), every entry must carry a valid user ID and
// a positive weight, and after duplicate user IDs are dropped (first
// occurrence wins, as normalization does) the remaining entries must fit
// the receiver-count ceiling and their weights must not sum above
// model.TotalSplitsWeight.
func ValidateSplitsReceivers(param string, receivers []model.SplitsReceiver) error {
	if receivers == nil {
		return errs.MissingArgument(param)
	}
	seen := make(map[string]struct{}, len(receivers))
	var totalWeight uint64
	for _, r := range receivers {
		id, err := ParseUserID(param+".userId", r.UserID)
		if err != nil {
			return err
		}
		if r.Weight == 0 {
			return errs.InvalidArgument(param+".weight", r.Weight, "must be positive")
		}
		canonical := id.String()
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		totalWeight += uint64(r.Weight)
	}
	if len(seen) > model.MaxSplitsReceivers {
		return errs.InvalidArgument(param, len(seen), "too many splits receivers")
	}
	if totalWeight > model.TotalSplitsWeight {
		return errs.InvalidArgument(param, totalWeight, "weights sum above the splits weight total")
	}
	return nil
}

// ValidateDripsReceivers checks a drips receiver list before it is
// normalized and submitted: the list must be present (nil means missing,
// an empty list means "clear"), every entry must carry a valid user ID and
// a packed configuration that fits in 256 bits, and the entries left after
// duplicate user IDs are dropped must fit the receiver-count ceiling.
func ValidateDripsReceivers(param string, receivers []model.DripsReceiver) error {
	if receivers == nil {
		return errs.MissingArgument(param)
	}
	seen := make(map[string]struct{}, len(receivers))
	for _, r := range receivers {
		id, err := ParseUserID(param+".userId", r.UserID)
		if err != nil {
			return err
		}
		if _, err := UnpackConfig(r.Config); err != nil {
			return err
		}
		seen[id.String()] = struct{}{}
	}
	if len(seen) > model.MaxDripsReceivers {
		return errs.InvalidArgument(param, len(seen), "too many drips receivers")
	}
	return nil
}

// ValidateUserMetadata checks that every metadata entry carries a key.
func ValidateUserMetadata(param string, metadata []model.UserMetadata) error {
	if metadata == nil {
		return errs.MissingArgument(param)
	}
	for _, m := range metadata {
		if m.Key == "" {
			return errs.MissingArgument(param + ".key")
		}
	}
	return nil
}
