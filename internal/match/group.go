package match

import (
	"sort"

	"github.com/quillfin/ledgermatch/internal/model"
)

// MaxGroupSize is the hard cap on how many sibling entries a grouped match
// may combine with its anchor. It bounds the exhaustive search (C(n,k) for
// k up to 5) and is enforced, not a soft default.
const MaxGroupSize = 5

// FindSubsetSum searches the sibling entries for a bounded-size subset
// that, together with the anchor entry, sums to the target amount within
// 1% tolerance. It prefers the smallest group, and returns the anchor as
// the group's first element. It returns false when the anchor is absent,
// when the anchor alone already matches the target (an ordinary single
// match, not a group), or when no group up to MaxGroupSize works.
//
// Siblings are ordered by amount descending then id ascending before the
// search, so the group picked is deterministic for a given sibling set
// regardless of input order.
func FindSubsetSum(entries []model.BankEntry, target float64, anchorID string) ([]model.BankEntry, bool) {
	var anchor *model.BankEntry
	others := make([]model.BankEntry, 0, len(entries))
	for i := range entries {
		if entries[i].ID == anchorID {
			anchor = &entries[i]
			continue
		}
		others = append(others, entries[i])
	}
	if anchor == nil {
		return nil, false
	}

	if AmountsMatch(anchor.Amount, target, GroupTolerancePercent) {
		return nil, false
	}

	sort.Slice(others, func(i, j int) bool {
		if others[i].Amount != others[j].Amount {
			return others[i].Amount > others[j].Amount
		}
		return others[i].ID < others[j].ID
	})

	maxSize := MaxGroupSize
	if len(others) < maxSize {
		maxSize = len(others)
	}

	for size := 1; size <= maxSize; size++ {
		if combo, ok := subsetOfSize(others, size, anchor.Amount, target); ok {
			group := make([]model.BankEntry, 0, size+1)
			group = append(group, *anchor)
			group = append(group, combo...)
			return group, true
		}
	}
	return nil, false
}

// subsetOfSize recursively searches for exactly size entries whose amounts
// plus base equal target within the group tolerance.
func subsetOfSize(entries []model.BankEntry, size int, base, target float64) ([]model.BankEntry, bool) {
	if size == 0 {
		if AmountsMatch(base, target, GroupTolerancePercent) {
			return nil, true
		}
		return nil, false
	}

	for i := 0; i+size <= len(entries); i++ {
		rest, ok := subsetOfSize(entries[i+1:], size-1, base+entries[i].Amount, target)
		if ok {
			return append([]model.BankEntry{entries[i]}, rest...), true
		}
	}
	return nil, false
}

// GroupTotal sums a group's signed amounts.
func GroupTotal(entries []model.BankEntry) float64 {
	total := 0.0
	for i := range entries {
		total += entries[i].Amount
	}
	return total
}
