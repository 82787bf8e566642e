package drips

import (
	"math/big"
	"strconv"
	"testing"

	"github.com/drips-network/drips-sdk-go/pkg/errs"
	"github.com/drips-network/drips-sdk-go/pkg/model"
)

func TestParseUserID(t *testing.T) {
	id, err := ParseUserID("userId", "846959513016227493489143736695218182523669298507")
	if err != nil {
		t.Fatalf("ParseUserID: %v", err)
	}
	if id.Sign() <= 0 {
		t.Fatalf("unexpected value: %s", id)
	}

	if _, err := ParseUserID("userId", ""); !errs.IsKind(err, errs.KindMissingArgument) {
		t.Fatalf("empty: expected missing-argument error, got %v", err)
	}
	if _, err := ParseUserID("userId", "0x1f"); !errs.IsKind(err, errs.KindInvalidArgument) {
		t.Fatalf("hex: expected invalid-argument error, got %v", err)
	}
	if _, err := ParseUserID("userId", "-1"); !errs.IsKind(err, errs.KindInvalidArgument) {
		t.Fatalf("negative: expected invalid-argument error, got %v", err)
	}
}

func TestValidateAddress(t *testing.T) {
	if err := ValidateAddress("tokenAddress", "0x1455d9bD6B98f95dd8FEB2b3D60ed825fcef0610"); err != nil {
		t.Fatalf("valid address rejected: %v", err)
	}
	if err := ValidateAddress("tokenAddress", ""); !errs.IsKind(err, errs.KindMissingArgument) {
		t.Fatalf("empty: expected missing-argument error, got %v", err)
	}
	if err := ValidateAddress("tokenAddress", "not-an-address"); !errs.IsKind(err, errs.KindInvalidArgument) {
		t.Fatalf("malformed: expected invalid-argument error, got %v", err)
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount("amount", big.NewInt(0)); err != nil {
		t.Fatalf("zero rejected: %v", err)
	}
	if err := ValidateAmount("amount", nil); !errs.IsKind(err, errs.KindMissingArgument) {
		t.Fatalf("nil: expected missing-argument error, got %v", err)
	}
	if err := ValidateAmount("amount", big.NewInt(-5)); !errs.IsKind(err, errs.KindInvalidArgument) {
		t.Fatalf("negative: expected invalid-argument error, got %v", err)
	}
}

func TestValidateSplitsReceivers(t *testing.T) {
	ok := []model.SplitsReceiver{{UserID: "1", Weight: model.TotalSplitsWeight}}
	if err := ValidateSplitsReceivers("receivers", ok); err != nil {
		t.Fatalf("valid set rejected: %v", err)
	}

	// nil means the argument was not provided; an empty list means "clear".
	if err := ValidateSplitsReceivers("receivers", nil); !errs.IsKind(err, errs.KindMissingArgument) {
		t.Fatalf("nil: expected missing-argument error, got %v", err)
	}
	if err := ValidateSplitsReceivers("receivers", []model.SplitsReceiver{}); err != nil {
		t.Fatalf("empty list rejected: %v", err)
	}

	tooMany := make([]model.SplitsReceiver, model.MaxSplitsReceivers+1)
	for i := range tooMany {
		tooMany[i] = model.SplitsReceiver{UserID: strconv.Itoa(i + 1), Weight: 1}
	}
	if err := ValidateSplitsReceivers("receivers", tooMany); !errs.IsKind(err, errs.KindInvalidArgument) {
		t.Fatalf("ceiling: expected invalid-argument error, got %v", err)
	}

	zeroWeight := []model.SplitsReceiver{{UserID: "1", Weight: 0}}
	if err := ValidateSplitsReceivers("receivers", zeroWeight); !errs.IsKind(err, errs.KindInvalidArgument) {
		t.Fatalf("zero weight: expected invalid-argument error, got %v", err)
	}

	overweight := []model.SplitsReceiver{
		{UserID: "1", Weight: model.TotalSplitsWeight},
		{UserID: "2", Weight: 1},
	}
	if err := ValidateSplitsReceivers("receivers", overweight); !errs.IsKind(err, errs.KindInvalidArgument) {
		t.Fatalf("weight sum: expected invalid-argument error, got %v", err)
	}

	// Duplicate user IDs are dropped during normalization, first occurrence
	// winning, so only the kept entries count toward the weight total.
	dupWeights := []model.SplitsReceiver{
		{UserID: "1", Weight: 600_000},
		{UserID: "1", Weight: 600_000},
		{UserID: "01", Weight: 600_000},
	}
	if err := ValidateSplitsReceivers("receivers", dupWeights); err != nil {
		t.Fatalf("duplicate weights double-counted: %v", err)
	}

	noID := []model.SplitsReceiver{{Weight: 1}}
	if err := ValidateSplitsReceivers("receivers", noID); !errs.IsKind(err, errs.KindMissingArgument) {
		t.Fatalf("missing userId: expected missing-argument error, got %v", err)
	}
}

func TestValidateDripsReceivers(t *testing.T) {
	ok := []model.DripsReceiver{{UserID: "1", Config: big.NewInt(1)}}
	if err := ValidateDripsReceivers("receivers", ok); err != nil {
		t.Fatalf("valid set rejected: %v", err)
	}

	if err := ValidateDripsReceivers("receivers", nil); !errs.IsKind(err, errs.KindMissingArgument) {
		t.Fatalf("nil: expected missing-argument error, got %v", err)
	}
	if err := ValidateDripsReceivers("receivers", []model.DripsReceiver{}); err != nil {
		t.Fatalf("empty list rejected: %v", err)
	}

	tooMany := make([]model.DripsReceiver, model.MaxDripsReceivers+1)
	for i := range tooMany {
		tooMany[i] = model.DripsReceiver{UserID: strconv.Itoa(i + 1), Config: big.NewInt(1)}
	}
	if err := ValidateDripsReceivers("receivers", tooMany); !errs.IsKind(err, errs.KindInvalidArgument) {
		t.Fatalf("ceiling: expected invalid-argument error, got %v", err)
	}

	// Duplicates collapse during normalization, so only the unique entries
	// count toward the ceiling.
	dups := make([]model.DripsReceiver, model.MaxDripsReceivers+1)
	for i := range dups {
		dups[i] = model.DripsReceiver{UserID: "1", Config: big.NewInt(1)}
	}
	if err := ValidateDripsReceivers("receivers", dups); err != nil {
		t.Fatalf("duplicate-heavy list rejected: %v", err)
	}

	noConfig := []model.DripsReceiver{{UserID: "1"}}
	if err := ValidateDripsReceivers("receivers", noConfig); !errs.IsKind(err, errs.KindMissingArgument) {
		t.Fatalf("missing config: expected missing-argument error, got %v", err)
	}
}

func TestValidateUserMetadata(t *testing.T) {
	ok := []model.UserMetadata{{Key: "ipfs", Value: "ipfs://Qm..."}}
	if err := ValidateUserMetadata("userMetadata", ok); err != nil {
		t.Fatalf("valid metadata rejected: %v", err)
	}
	if err := ValidateUserMetadata("userMetadata", nil); !errs.IsKind(err, errs.KindMissingArgument) {
		t.Fatalf("nil: expected missing-argument error, got %v", err)
	}
	noKey := []model.UserMetadata{{Value: "v"}}
	if err := ValidateUserMetadata("userMetadata", noKey); !errs.IsKind(err, errs.KindMissingArgument) {
		t.Fatalf("missing key: expected missing-argument error, got %v", err)
	}
}
