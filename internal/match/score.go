package match

import (
	"fmt"
	"math"
	"time"

	"github.com/quillfin/ledgermatch/internal/model"
)

// MaxScore is the ceiling for any automatic match. No pair ever scores 1.0:
// final acceptance is a human decision.
const MaxScore = 0.95

// amountTier is the amount axis of the score ladder.
type amountTier int

const (
	tierExact amountTier = iota // within ExactTolerancePercent
	tierClose                   // within CloseTolerancePercent
	tierAny                     // either tier, any day gap
)

// ladderRule is one row of the fixed confidence ladder.
type ladderRule struct {
	tier    amountTier
	maxDays int
	score   float64
}

// scoreLadder is evaluated top to bottom, first match wins. The ordered
// table keeps each threshold independently testable and the priority of
// evidence visible, instead of burying it in nested conditionals.
var scoreLadder = []ladderRule{
	{tierExact, 0, 0.95},
	{tierExact, 3, 0.85},
	{tierExact, 7, 0.75},
	{tierClose, 0, 0.70},
	{tierClose, 3, 0.60},
	{tierExact, 14, 0.50},
	{tierClose, 7, 0.45},
	{tierExact, 30, 0.30},
	{tierClose, 14, 0.25},
	{tierAny, math.MaxInt, 0.10},
}

// Score combines amount and date evidence for an (entry, candidate) pair
// into a single confidence value in [0, MaxScore]. No amount match within
// the close tolerance scores 0 regardless of dates; a missing date on
// either side falls through to the any-gap row.
func Score(entry model.BankEntry, candidate model.Candidate) float64 {
	exact := AmountsMatch(entry.Amount, candidate.Amount, ExactTolerancePercent)
	closeMatch := AmountsMatch(entry.Amount, candidate.Amount, CloseTolerancePercent)
	if !closeMatch {
		return 0
	}

	days := math.MaxInt
	if !entry.Date.IsZero() && !candidate.DueDate.IsZero() {
		days = DaysBetween(entry.Date, candidate.DueDate)
	}

	for _, rule := range scoreLadder {
		if days > rule.maxDays {
			continue
		}
		switch rule.tier {
		case tierExact:
			if exact {
				return rule.score
			}
		case tierClose:
			if closeMatch {
				return rule.score
			}
		case tierAny:
			return rule.score
		}
	}
	return 0
}

// Explain produces the human-readable amount/date justification shown next
// to a suggestion. Presentation only; it never feeds back into the score.
func Explain(entry model.BankEntry, candidate model.Candidate) string {
	var amountPart string
	switch {
	case AmountsMatch(entry.Amount, candidate.Amount, ExactTolerancePercent):
		amountPart = fmt.Sprintf("amount %.2f matches exactly", entry.AbsAmount())
	case AmountsMatch(entry.Amount, candidate.Amount, CloseTolerancePercent):
		amountPart = fmt.Sprintf("amount %.2f is within 5%% of expected %.2f",
			entry.AbsAmount(), math.Abs(candidate.Amount))
	default:
		amountPart = fmt.Sprintf("amount %.2f does not match expected %.2f",
			entry.AbsAmount(), math.Abs(candidate.Amount))
	}

	return amountPart + ", " + explainDates(entry.Date, candidate.DueDate)
}

func explainDates(d1, d2 time.Time) string {
	if d1.IsZero() || d2.IsZero() {
		return "dates unavailable"
	}

	switch days := DaysBetween(d1, d2); days {
	case 0:
		return "same day"
	case 1:
		return "1 day apart"
	default:
		return fmt.Sprintf("%d days apart", days)
	}
}
