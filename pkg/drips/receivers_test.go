package drips

import (
	"math/big"
	"testing"

	"github.com/drips-network/drips-sdk-go/pkg/errs"
	"github.com/drips-network/drips-sdk-go/pkg/model"
)

func TestNormalizeSplitsSortsAndDedups(t *testing.T) {
	in := []model.SplitsReceiver{
		{UserID: "2", Weight: 100},
		{UserID: "1", Weight: 1},
		{UserID: "1", Weight: 1},
	}

	got, err := NormalizeSplits(in)
	if err != nil {
		t.Fatalf("NormalizeSplits: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 receivers, got %d", len(got))
	}
	if got[0].UserID != "1" || got[1].UserID != "2" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestNormalizeSplitsFirstSeenWins(t *testing.T) {
	// Duplicates are resolved before sorting: the entry seen first in the
	// input is kept regardless of where sorting would have placed it.
	in := []model.SplitsReceiver{
		{UserID: "5", Weight: 10},
		{UserID: "5", Weight: 20},
	}

	got, err := NormalizeSplits(in)
	if err != nil {
		t.Fatalf("NormalizeSplits: %v", err)
	}
	if len(got) != 1 || got[0].Weight != 10 {
		t.Fatalf("expected the first-seen duplicate to win, got %+v", got)
	}
}

func TestNormalizeDripsReceiversNumericOrder(t *testing.T) {
	// "9" must come before "10"; a lexicographic string sort gets this backward.
	in := []model.DripsReceiver{
		{UserID: "10", Config: big.NewInt(1)},
		{UserID: "9", Config: big.NewInt(2)},
	}

	got, err := NormalizeDripsReceivers(in)
	if err != nil {
		t.Fatalf("NormalizeDripsReceivers: %v", err)
	}
	if got[0].UserID != "9" || got[1].UserID != "10" {
		t.Fatalf("expected numeric order, got %+v", got)
	}
}

func TestNormalizeDripsReceiversKeepsConfig(t *testing.T) {
	cfg := new(big.Int).Lsh(big.NewInt(7), 224)
	in := []model.DripsReceiver{{UserID: "3", Config: cfg}}

	got, err := NormalizeDripsReceivers(in)
	if err != nil {
		t.Fatalf("NormalizeDripsReceivers: %v", err)
	}
	if got[0].Config.Cmp(cfg) != 0 {
		t.Fatalf("config must pass through unchanged: got %s", got[0].Config)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	splits, err := NormalizeSplits([]model.SplitsReceiver{})
	if err != nil {
		t.Fatalf("NormalizeSplits: %v", err)
	}
	if len(splits) != 0 {
		t.Fatalf("expected empty output, got %+v", splits)
	}

	dripsList, err := NormalizeDripsReceivers([]model.DripsReceiver{})
	if err != nil {
		t.Fatalf("NormalizeDripsReceivers: %v", err)
	}
	if len(dripsList) != 0 {
		t.Fatalf("expected empty output, got %+v", dripsList)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	in := []model.SplitsReceiver{
		{UserID: "2", Weight: 2},
		{UserID: "1", Weight: 1},
	}

	if _, err := NormalizeSplits(in); err != nil {
		t.Fatalf("NormalizeSplits: %v", err)
	}
	if in[0].UserID != "2" || in[1].UserID != "1" {
		t.Fatalf("input slice was mutated: %+v", in)
	}
}

func TestNormalizeRejectsBadUserID(t *testing.T) {
	_, err := NormalizeSplits([]model.SplitsReceiver{{UserID: "abc", Weight: 1}})
	if !errs.IsKind(err, errs.KindInvalidArgument) {
		t.Fatalf("expected invalid-argument error, got %v", err)
	}

	_, err = NormalizeDripsReceivers([]model.DripsReceiver{{UserID: "", Config: big.NewInt(1)}})
	if !errs.IsKind(err, errs.KindMissingArgument) {
		t.Fatalf("expected missing-argument error, got %v", err)
	}
}

func TestNormalizeEquivalentDecimalForms(t *testing.T) {
	// "01" and "1" are the same unsigned integer, so the second is a duplicate.
	got, err := NormalizeSplits([]model.SplitsReceiver{
		{UserID: "01", Weight: 5},
		{UserID: "1", Weight: 6},
	})
	if err != nil {
		t.Fatalf("NormalizeSplits: %v", err)
	}
	if len(got) != 1 || got[0].Weight != 5 {
		t.Fatalf("expected numeric dedup with first-seen winning, got %+v", got)
	}
}
