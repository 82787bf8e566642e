package drips

import (
	"math"
	"math/big"
	"testing"

	"github.com/drips-network/drips-sdk-go/pkg/errs"
	"github.com/drips-network/drips-sdk-go/pkg/model"
)

func TestPackConfigLayout(t *testing.T) {
	packed, err := PackConfig(model.DripsReceiverConfig{
		DripID:    1,
		AmtPerSec: big.NewInt(2),
		Duration:  3,
		Start:     4,
	})
	if err != nil {
		t.Fatalf("PackConfig: %v", err)
	}

	// dripId at bit 224, amtPerSec at bit 64, start at bit 32, duration at bit 0.
	want := new(big.Int).Lsh(big.NewInt(1), 224)
	want.Or(want, new(big.Int).Lsh(big.NewInt(2), 64))
	want.Or(want, new(big.Int).Lsh(big.NewInt(4), 32))
	want.Or(want, big.NewInt(3))

	if packed.Cmp(want) != 0 {
		t.Fatalf("PackConfig = %s, want %s", packed, want)
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	maxAmtPerSec := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 160), big.NewInt(1))

	tests := []model.DripsReceiverConfig{
		{DripID: 0, AmtPerSec: big.NewInt(0), Start: 0, Duration: 0},
		{DripID: 1, AmtPerSec: big.NewInt(1), Start: 1, Duration: 1},
		{DripID: 42, AmtPerSec: big.NewInt(1_000_000_000), Start: 1_700_000_000, Duration: 86_400},
		{DripID: math.MaxUint32, AmtPerSec: maxAmtPerSec, Start: math.MaxUint32, Duration: math.MaxUint32},
	}

	for _, cfg := range tests {
		packed, err := PackConfig(cfg)
		if err != nil {
			t.Fatalf("PackConfig(%+v): %v", cfg, err)
		}
		got, err := UnpackConfig(packed)
		if err != nil {
			t.Fatalf("UnpackConfig(%s): %v", packed, err)
		}
		if got.DripID != cfg.DripID || got.Start != cfg.Start || got.Duration != cfg.Duration {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, cfg)
		}
		if got.AmtPerSec.Cmp(cfg.AmtPerSec) != 0 {
			t.Fatalf("amtPerSec mismatch: got %s, want %s", got.AmtPerSec, cfg.AmtPerSec)
		}
	}
}

func TestPackConfigDeterministic(t *testing.T) {
	cfg := model.DripsReceiverConfig{DripID: 7, AmtPerSec: big.NewInt(99), Start: 8, Duration: 9}
	a, err := PackConfig(cfg)
	if err != nil {
		t.Fatalf("PackConfig: %v", err)
	}
	b, err := PackConfig(cfg)
	if err != nil {
		t.Fatalf("PackConfig: %v", err)
	}
	if a.Cmp(b) != 0 {
		t.Fatalf("equal inputs produced different outputs: %s vs %s", a, b)
	}
}

func TestPackConfigRejectsOverflow(t *testing.T) {
	amtTooWide := new(big.Int).Lsh(big.NewInt(1), 160)

	tests := []struct {
		name string
		cfg  model.DripsReceiverConfig
	}{
		{"dripId", model.DripsReceiverConfig{DripID: 1 << 32, AmtPerSec: big.NewInt(1)}},
		{"amtPerSec", model.DripsReceiverConfig{AmtPerSec: amtTooWide}},
		{"start", model.DripsReceiverConfig{AmtPerSec: big.NewInt(1), Start: 1 << 32}},
		{"duration", model.DripsReceiverConfig{AmtPerSec: big.NewInt(1), Duration: 1 << 32}},
		{"negative amtPerSec", model.DripsReceiverConfig{AmtPerSec: big.NewInt(-1)}},
	}

	for _, tc := range tests {
		if _, err := PackConfig(tc.cfg); !errs.IsKind(err, errs.KindInvalidArgument) {
			t.Fatalf("%s: expected invalid-argument error, got %v", tc.name, err)
		}
	}
}

func TestPackConfigRequiresAmtPerSec(t *testing.T) {
	_, err := PackConfig(model.DripsReceiverConfig{DripID: 1})
	if !errs.IsKind(err, errs.KindMissingArgument) {
		t.Fatalf("expected missing-argument error, got %v", err)
	}
}

func TestUnpackConfigRejectsBadInput(t *testing.T) {
	if _, err := UnpackConfig(nil); !errs.IsKind(err, errs.KindMissingArgument) {
		t.Fatalf("nil: expected missing-argument error, got %v", err)
	}
	if _, err := UnpackConfig(big.NewInt(-1)); !errs.IsKind(err, errs.KindInvalidArgument) {
		t.Fatalf("negative: expected invalid-argument error, got %v", err)
	}
	tooWide := new(big.Int).Lsh(big.NewInt(1), 256)
	if _, err := UnpackConfig(tooWide); !errs.IsKind(err, errs.KindInvalidArgument) {
		t.Fatalf("2^256: expected invalid-argument error, got %v", err)
	}
}
