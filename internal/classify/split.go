// Package classify turns raw match evidence into a final classification:
// an intent, a confidence, a suggested match, and a principal/interest
// split for loan payments. Like the match package it is pure: the same
// entry and candidate set always produce the same classification.
package classify

import (
	"math"

	"github.com/quillfin/ledgermatch/internal/model"
)

// ComputeSplit allocates a loan payment across principal and interest with
// a strict interest-first waterfall:
//
//   - payment equals the installment (to the cent): split mirrors the
//     installment exactly
//   - payment exceeds the installment: interest satisfied in full, all
//     excess applied to principal
//   - payment falls short: interest satisfied first up to the amount
//     available, remainder (if any) to principal
//
// There is no partial-interest/partial-principal blending. The result
// always sums to the absolute payment within one cent.
func ComputeSplit(paid, principalDue, interestDue float64) model.Split {
	paid = round2(math.Abs(paid))
	total := principalDue + interestDue

	switch {
	case math.Abs(paid-total) <= 0.01:
		return model.Split{Principal: principalDue, Interest: interestDue}
	case paid > total:
		return model.Split{Principal: round2(paid - interestDue), Interest: interestDue}
	default:
		interest := math.Min(paid, interestDue)
		return model.Split{Principal: round2(paid - interest), Interest: interest}
	}
}

// round2 rounds to 2 decimal places, the precision of all amounts.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
