package match

import "math"

// Amount tolerance tiers, in percent of the larger amount.
const (
	// ExactTolerancePercent treats amounts as identical (rounding slack).
	ExactTolerancePercent = 0.1
	// CloseTolerancePercent treats amounts as near misses worth surfacing.
	CloseTolerancePercent = 5.0
	// GroupTolerancePercent is the slack allowed when summing a group of
	// entries against a target amount.
	GroupTolerancePercent = 1.0
)

// AmountsMatch compares absolute amounts within a percentage tolerance of
// the larger one. Two zero amounts match; a zero against a non-zero never
// does.
func AmountsMatch(a, b, tolerancePercent float64) bool {
	absA, absB := math.Abs(a), math.Abs(b)
	if absA == 0 && absB == 0 {
		return true
	}
	if absA == 0 || absB == 0 {
		return false
	}
	return math.Abs(absA-absB) <= math.Max(absA, absB)*tolerancePercent/100
}
