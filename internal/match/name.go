package match

import "strings"

// Name match scores, in strict priority order. Whole business names outrank
// whole personal names, which outrank single-word fallbacks.
const (
	businessNameScore  = 1.0
	personalNameScore  = 0.9
	businessTokenScore = 0.85
	businessWordScore  = 0.8
	personalTokenScore = 0.75
	personalWordScore  = 0.7
)

// minNameLen is the shortest normalized name worth matching whole.
const minNameLen = 3

// NameScore decides whether a description plausibly names a given borrower
// or investor, returning on the first hit of a strict priority ladder:
// whole business name (1.0), whole personal name (0.9), then single words
// of either name. Words of 4+ characters match as substrings; 3-character
// words must match as whole tokens, since short words spuriously match
// inside unrelated longer words. Missing names short-circuit to 0.
func NameScore(description, personalName, businessName string) float64 {
	desc := NormalizeName(description)
	if desc == "" {
		return 0
	}
	descTokens := strings.Fields(desc)

	business := NormalizeName(businessName)
	personal := NormalizeName(personalName)

	if len(business) >= minNameLen && strings.Contains(desc, business) {
		return businessNameScore
	}
	if len(personal) >= minNameLen && strings.Contains(desc, personal) {
		return personalNameScore
	}

	if score := wordScore(desc, descTokens, business, businessWordScore, businessTokenScore); score > 0 {
		return score
	}
	return wordScore(desc, descTokens, personal, personalWordScore, personalTokenScore)
}

// wordScore applies the two-tier single-word check: substring match for
// words of 4+ characters, whole-token match for exactly 3.
func wordScore(desc string, descTokens []string, name string, substringScore, tokenScore float64) float64 {
	for _, word := range strings.Fields(name) {
		switch {
		case len(word) >= 4 && strings.Contains(desc, word):
			return substringScore
		case len(word) == 3 && containsToken(descTokens, word):
			return tokenScore
		}
	}
	return 0
}

func containsToken(tokens []string, word string) bool {
	for _, tok := range tokens {
		if tok == word {
			return true
		}
	}
	return false
}
