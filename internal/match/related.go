package match

import (
	"github.com/quillfin/ledgermatch/internal/model"
)

// relatedOverlapThreshold is the minimum fraction of the smaller token set
// that must appear in the other description for the two to count as
// fragments of one real-world payment.
const relatedOverlapThreshold = 0.5

// DescriptionsRelated reports whether two bank-entry descriptions look like
// fragments of the same payment: at least half the tokens of the smaller
// description (3+ characters, normalized) appear in the other.
func DescriptionsRelated(a, b string) bool {
	tokensA := tokenize(a, nil)
	tokensB := tokenize(b, nil)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return false
	}

	smaller, other := tokensA, tokensB
	if len(tokensB) < len(tokensA) {
		smaller, other = tokensB, tokensA
	}

	otherSet := make(map[string]bool, len(other))
	for _, tok := range other {
		otherSet[tok] = true
	}

	matched := 0
	for _, tok := range smaller {
		if otherSet[tok] {
			matched++
		}
	}
	return float64(matched)/float64(len(smaller)) >= relatedOverlapThreshold
}

// GroupRelated corroborates a proposed group of bank entries as one split
// payment: every entry must be related to the first entry's description.
// Groups of one (or none) are trivially related.
func GroupRelated(entries []model.BankEntry) bool {
	for i := 1; i < len(entries); i++ {
		if !DescriptionsRelated(entries[0].Description, entries[i].Description) {
			return false
		}
	}
	return true
}
