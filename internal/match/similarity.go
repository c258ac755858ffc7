package match

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// LevenshteinSimilarity returns edit-distance similarity in [0,1]: the
// classic distance normalized by the longer string's length. Strings whose
// lengths differ by more than 50% score 0 without computing the distance.
func LevenshteinSimilarity(a, b string) float64 {
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}
	if a == "" || b == "" {
		return 0
	}

	la, lb := len(a), len(b)
	longer, shorter := la, lb
	if lb > la {
		longer, shorter = lb, la
	}

	// Cheap pruning: wildly different lengths cannot be similar.
	if float64(shorter)/float64(longer) < 0.5 {
		return 0
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longer)
}

// KeywordOverlapSimilarity returns token-overlap similarity in [0,1]:
// 1 for exact equality, 0.8 for whole-string containment either way, else
// the fraction of tokens in the smaller set that have a containment match
// (substring in either direction) in the other set.
func KeywordOverlapSimilarity(a, b string) float64 {
	la, lb := strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return 0
	}
	if la == lb {
		return 1
	}
	if strings.Contains(la, lb) || strings.Contains(lb, la) {
		return 0.8
	}

	tokensA := ExtractKeywords(la)
	tokensB := ExtractKeywords(lb)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	smaller, other := tokensA, tokensB
	if len(tokensB) < len(tokensA) {
		smaller, other = tokensB, tokensA
	}

	matched := 0
	for _, tok := range smaller {
		for _, cand := range other {
			if strings.Contains(cand, tok) || strings.Contains(tok, cand) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(smaller))
}
