package model

import (
	"fmt"
	"math"
)

// splitTolerance is the rounding slack allowed between a split's components
// and the payment they divide, in currency units.
const splitTolerance = 0.01

// Split divides a loan payment into principal, interest and fee components.
type Split struct {
	Principal float64
	Interest  float64
	Fees      float64
}

// Total returns the sum of all components.
func (s *Split) Total() float64 {
	return s.Principal + s.Interest + s.Fees
}

// Validate ensures the split covers the paid amount within one cent and has
// no negative components.
func (s *Split) Validate(paid float64) error {
	if s.Principal < 0 || s.Interest < 0 || s.Fees < 0 {
		return fmt.Errorf("split components must not be negative")
	}
	if diff := math.Abs(s.Total() - math.Abs(paid)); diff > splitTolerance {
		return fmt.Errorf("split total %.2f does not cover payment %.2f (diff %.2f)",
			s.Total(), math.Abs(paid), diff)
	}
	return nil
}
