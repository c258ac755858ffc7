package classify

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/quillfin/ledgermatch/internal/match"
	"github.com/quillfin/ledgermatch/internal/model"
)

// Config holds the resolver's decision thresholds.
type Config struct {
	// SuggestThreshold is the minimum combined score for any suggestion;
	// below it the entry stays unknown.
	SuggestThreshold float64
	// WeakThreshold is the score under which a single match is considered
	// weak and a grouped match is attempted instead.
	WeakThreshold float64
	// GroupScore is the confidence assigned to a corroborated grouped
	// match, whose per-entry date evidence is heterogeneous.
	GroupScore float64
}

// DefaultConfig returns the standard resolver thresholds.
func DefaultConfig() Config {
	return Config{
		SuggestThreshold: 0.30,
		WeakThreshold:    0.70,
		GroupScore:       0.60,
	}
}

// Resolver produces the final classification for a bank entry given a
// read-only snapshot of candidate records and the entry's sibling set
// (the same import batch, used for grouped-payment detection).
type Resolver struct {
	config Config
}

// NewResolver creates a resolver with default thresholds.
func NewResolver() *Resolver {
	return NewResolverWithConfig(DefaultConfig())
}

// NewResolverWithConfig creates a resolver with custom thresholds.
func NewResolverWithConfig(config Config) *Resolver {
	return &Resolver{config: config}
}

// scored pairs a candidate with its match evidence.
type scored struct {
	candidate model.Candidate
	intent    model.Intent
	base      float64
	name      float64
	combined  float64
}

// Classify emits the classification for one bank entry. It never fails:
// absence of a match is the valid result {unknown, 0, NoMatch}.
func (r *Resolver) Classify(entry model.BankEntry, candidates []model.Candidate, siblings []model.BankEntry) model.Classification {
	if entry.Amount == 0 {
		return unknown(entry, "zero amount")
	}

	best := r.rankCandidates(entry, candidates)
	if best == nil {
		return unknown(entry, "no candidate matches amount, date or name")
	}

	if best.combined < r.config.WeakThreshold {
		if c, ok := r.groupedClassification(entry, *best, siblings); ok {
			return c
		}
	}

	if best.combined < r.config.SuggestThreshold {
		return unknown(entry, "best candidate score too low to suggest")
	}

	return r.singleClassification(entry, *best)
}

// rankCandidates scores every directionally eligible candidate and returns
// the best, or nil when nothing scores above zero.
func (r *Resolver) rankCandidates(entry model.BankEntry, candidates []model.Candidate) *scored {
	var best *scored
	for _, cand := range candidates {
		intent := intentFor(cand, entry)
		if intent == model.IntentUnknown {
			continue
		}

		s := scored{
			candidate: cand,
			intent:    intent,
			base:      match.Score(entry, cand),
			name:      match.NameScore(entry.Description, cand.PersonalName, cand.BusinessName),
		}
		s.combined = combine(s.base, s.name)
		if s.combined == 0 {
			continue
		}

		if best == nil || s.combined > best.combined ||
			(s.combined == best.combined && s.candidate.ID < best.candidate.ID) {
			b := s
			best = &b
		}
	}
	return best
}

// combine boosts the amount/date ladder score with name evidence. A name
// hit can lift a weak amount match over the suggestion threshold, but with
// no amount evidence at all it is capped below the strong-match threshold,
// so a name-only hit routes through the grouped-payment search instead of
// masquerading as a confident single match.
func combine(base, name float64) float64 {
	if base == 0 {
		return 0.45 * name
	}
	return math.Min(base+0.25*name, match.MaxScore)
}

// singleClassification builds the classification for a single-entity match.
func (r *Resolver) singleClassification(entry model.BankEntry, s scored) model.Classification {
	explanation := match.Explain(entry, s.candidate)
	if s.name > 0 {
		explanation += fmt.Sprintf("; description names %s", s.candidate.DisplayName())
	}

	c := model.Classification{
		ClassifiedAt: time.Now().UTC(),
		EntryID:      entry.ID,
		Intent:       s.intent,
		Confidence:   toConfidence(s.combined),
		Match:        model.SingleMatch{Candidate: s.candidate},
		Explanation:  explanation,
	}
	attachSplit(&c, entry, s.candidate)
	return c
}

// groupedClassification attempts a subset-sum group against the best
// candidate's expected amount, corroborated by description relatedness
// across the group's siblings.
func (r *Resolver) groupedClassification(entry model.BankEntry, s scored, siblings []model.BankEntry) (model.Classification, bool) {
	if s.candidate.Amount == 0 {
		return model.Classification{}, false
	}

	pool := siblings
	if !containsEntry(pool, entry.ID) {
		pool = append(append([]model.BankEntry{}, siblings...), entry)
	}

	group, ok := match.FindSubsetSum(pool, s.candidate.Amount, entry.ID)
	if !ok || !match.GroupRelated(group) {
		return model.Classification{}, false
	}

	total := match.GroupTotal(group)
	explanation := fmt.Sprintf("%d entries totalling %.2f match expected %.2f for %s",
		len(group), math.Abs(total), math.Abs(s.candidate.Amount), s.candidate.DisplayName())

	return model.Classification{
		ClassifiedAt: time.Now().UTC(),
		EntryID:      entry.ID,
		Intent:       s.intent,
		Confidence:   toConfidence(r.config.GroupScore),
		Match:        model.GroupMatch{Candidate: s.candidate, Entries: group, Total: total},
		Explanation:  explanation,
	}, true
}

// attachSplit computes the principal/interest split for loan payments when
// the candidate carries installment components.
func attachSplit(c *model.Classification, entry model.BankEntry, cand model.Candidate) {
	if c.Intent != model.IntentLoanRepayment && c.Intent != model.IntentInterestOnlyPayment {
		return
	}
	if cand.PrincipalDue+cand.InterestDue <= 0 {
		return
	}
	split := ComputeSplit(entry.AbsAmount(), cand.PrincipalDue, cand.InterestDue)
	c.Split = &split
}

// intentFor maps a candidate's kind and the entry's direction to an
// intent, or unknown when the pairing is directionally impossible.
func intentFor(cand model.Candidate, entry model.BankEntry) model.Intent {
	credit := entry.IsCredit()

	switch cand.Kind {
	case model.KindLoan:
		if credit {
			return model.IntentLoanRepayment
		}
		return model.IntentLoanDisbursement

	case model.KindInstallment:
		if !credit {
			return model.IntentUnknown
		}
		if interestOnly(entry, cand) {
			return model.IntentInterestOnlyPayment
		}
		return model.IntentLoanRepayment

	case model.KindInvestor:
		if credit {
			return model.IntentInvestorFunding
		}
		if cand.InterestDue > 0 && match.AmountsMatch(entry.Amount, cand.InterestDue, match.CloseTolerancePercent) {
			return model.IntentInvestorInterest
		}
		return model.IntentInvestorWithdrawal

	case model.KindExpenseType:
		if credit {
			return model.IntentUnknown
		}
		if strings.Contains(strings.ToLower(cand.Label), "fee") {
			return model.IntentPlatformFee
		}
		return model.IntentOperatingExpense
	}
	return model.IntentUnknown
}

// interestOnly reports whether a credit against an installment looks like
// an interest-only payment: the installment has no principal due, or the
// amount matches the interest component exactly while missing the total.
func interestOnly(entry model.BankEntry, cand model.Candidate) bool {
	if cand.PrincipalDue == 0 && cand.InterestDue > 0 {
		return true
	}
	return cand.InterestDue > 0 &&
		match.AmountsMatch(entry.Amount, cand.InterestDue, match.ExactTolerancePercent) &&
		!match.AmountsMatch(entry.Amount, cand.Amount, match.ExactTolerancePercent)
}

// unknown is the resting classification for entries nothing matches.
func unknown(entry model.BankEntry, reason string) model.Classification {
	return model.Classification{
		ClassifiedAt: time.Now().UTC(),
		EntryID:      entry.ID,
		Intent:       model.IntentUnknown,
		Confidence:   0,
		Match:        model.NoMatch{},
		Explanation:  reason,
	}
}

// toConfidence converts an internal 0-0.95 score to the 0-100 scale the
// classification exposes.
func toConfidence(score float64) int {
	return int(math.Round(score * 100))
}

func containsEntry(entries []model.BankEntry, id string) bool {
	for i := range entries {
		if entries[i].ID == id {
			return true
		}
	}
	return false
}
