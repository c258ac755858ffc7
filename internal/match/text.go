// Package match implements the pure matching and scoring primitives the
// classifier is built on: text normalization, string similarity, amount and
// date tolerance scoring, the fixed confidence ladder, name-in-description
// detection, description relatedness, and the bounded subset-sum search for
// grouped payments. Every function is deterministic and side-effect free.
package match

import (
	"regexp"
	"strings"
)

// stopWords are connector words and banking jargon that carry no identity.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "from": true, "with": true,
	"ref": true, "reference": true, "payment": true, "payments": true,
	"transfer": true, "bacs": true, "chaps": true, "faster": true,
	"fps": true, "credit": true, "debit": true, "card": true,
	"direct": true, "standing": true, "order": true, "online": true,
	"mobile": true, "bank": true, "banking": true, "account": true,
	"received": true, "sent": true,
}

// vendorStopWords extends stopWords with payment-network jargon seen in
// card-acquirer descriptions.
var vendorStopWords = map[string]bool{
	"visa": true, "mastercard": true, "amex": true, "paypal": true,
	"stripe": true, "gocardless": true, "sumup": true, "izettle": true,
	"worldpay": true, "square": true, "klarna": true,
	"pos": true, "purchase": true, "pmnt": true, "pymt": true,
	"trn": true, "txn": true, "intl": true, "sepa": true, "swift": true,
	"iban": true, "contactless": true, "merchant": true,
}

// corporateSuffixes are stripped from names before any substring check.
var corporateSuffixes = map[string]bool{
	"ltd": true, "limited": true, "plc": true, "inc": true,
	"llc": true, "llp": true, "co": true, "company": true,
}

var (
	nonAlnumRe  = regexp.MustCompile(`[^a-z0-9]+`)
	domainRe    = regexp.MustCompile(`\b[a-z0-9][a-z0-9.-]*\.(?:com|net|org|io|co|uk|co\.uk)\b`)
	phoneRe     = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
	longDigitRe = regexp.MustCompile(`\d{5,}`)
)

// maxVendorKeywords caps how many tokens a vendor suggestion may carry.
const maxVendorKeywords = 5

// ExtractKeywords tokenizes free text for overlap checks: lower-cased,
// alphanumeric-only tokens of at least 3 characters, stop words removed.
// Token order follows the input.
func ExtractKeywords(text string) []string {
	return tokenize(text, stopWords)
}

// ExtractVendorKeywords is the stricter variant used when suggesting vendor
// identity from a messy bank description. It additionally strips URLs and
// domains, phone-shaped digit runs, long digit runs (likely references) and
// payment-network jargon, and returns at most 5 tokens.
func ExtractVendorKeywords(text string) []string {
	lower := strings.ToLower(text)
	lower = domainRe.ReplaceAllString(lower, " ")
	lower = phoneRe.ReplaceAllString(lower, " ")
	lower = longDigitRe.ReplaceAllString(lower, " ")

	var tokens []string
	for _, tok := range tokenize(lower, stopWords) {
		if vendorStopWords[tok] {
			continue
		}
		tokens = append(tokens, tok)
		if len(tokens) == maxVendorKeywords {
			break
		}
	}
	return tokens
}

// NormalizeName prepares a personal or business name for substring checks:
// lower-cased, corporate suffixes removed, non-alphanumerics collapsed to
// single spaces.
func NormalizeName(name string) string {
	lower := nonAlnumRe.ReplaceAllString(strings.ToLower(name), " ")

	var words []string
	for _, w := range strings.Fields(lower) {
		if corporateSuffixes[w] {
			continue
		}
		words = append(words, w)
	}
	return strings.Join(words, " ")
}

// tokenize lower-cases, strips non-alphanumerics, and drops tokens shorter
// than 3 characters or present in the given stop-word set.
func tokenize(text string, stops map[string]bool) []string {
	cleaned := nonAlnumRe.ReplaceAllString(strings.ToLower(text), " ")

	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) < 3 || stops[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
