package drips

import (
	"math/big"
	"sort"

	"github.com/drips-network/drips-sdk-go/pkg/model"
)

// The contracts require receiver lists to be sorted by user ID and free of
// duplicates. Both normalizers below compare user IDs as unsigned integers,
// never as strings, so "9" orders before "10". When the same user ID occurs
// more than once, the occurrence seen first in the input wins and later
// ones are dropped; dropping is deliberate, not an error.

// NormalizeSplits returns receivers sorted ascending by user ID with
// duplicate user IDs removed. The input slice is not modified. An empty
// input yields an empty output, which callers use to clear all receivers.
func NormalizeSplits(receivers []model.SplitsReceiver) ([]model.SplitsReceiver, error) {
	type keyed struct {
		id       *big.Int
		receiver model.SplitsReceiver
	}

	seen := make(map[string]struct{}, len(receivers))
	kept := make([]keyed, 0, len(receivers))
	for _, r := range receivers {
		id, err := ParseUserID("receivers.userId", r.UserID)
		if err != nil {
			return nil, err
		}
		canonical := id.String()
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		kept = append(kept, keyed{id: id, receiver: r})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].id.Cmp(kept[j].id) < 0
	})

	out := make([]model.SplitsReceiver, len(kept))
	for i, k := range kept {
		out[i] = k.receiver
	}
	return out, nil
}

// NormalizeDripsReceivers returns receivers sorted ascending by user ID
// with duplicate user IDs removed, first occurrence winning. The packed
// configuration of each entry is passed through untouched.
func NormalizeDripsReceivers(receivers []model.DripsReceiver) ([]model.DripsReceiver, error) {
	type keyed struct {
		id       *big.Int
		receiver model.DripsReceiver
	}

	seen := make(map[string]struct{}, len(receivers))
	kept := make([]keyed, 0, len(receivers))
	for _, r := range receivers {
		id, err := ParseUserID("receivers.userId", r.UserID)
		if err != nil {
			return nil, err
		}
		canonical := id.String()
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		kept = append(kept, keyed{id: id, receiver: r})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].id.Cmp(kept[j].id) < 0
	})

	out := make([]model.DripsReceiver, len(kept))
	for i, k := range kept {
		out[i] = k.receiver
	}
	return out, nil
}
