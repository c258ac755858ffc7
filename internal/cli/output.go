package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quillfin/ledgermatch/internal/engine"
	"github.com/quillfin/ledgermatch/internal/model"
)

// FormatSummary renders a classification run summary.
func FormatSummary(s *engine.Summary) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Classification summary"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d entries classified: %s, %s, %s\n",
		s.Total,
		SuccessStyle.Render(fmt.Sprintf("%d suggested", s.Suggested)),
		WarningStyle.Render(fmt.Sprintf("%d grouped", s.Grouped)),
		SubtleStyle.Render(fmt.Sprintf("%d unknown", s.Unknown))))

	intents := make([]model.Intent, 0, len(s.ByIntent))
	for intent := range s.ByIntent {
		intents = append(intents, intent)
	}
	sort.Slice(intents, func(i, j int) bool { return intents[i] < intents[j] })

	for _, intent := range intents {
		b.WriteString(fmt.Sprintf("  %-24s %d\n", intent, s.ByIntent[intent]))
	}
	return b.String()
}

// FormatEntries renders bank entries as a table.
func FormatEntries(entries []model.BankEntry) string {
	var b strings.Builder

	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-12s %-10s %12s  %-11s %s",
		"ID", "DATE", "AMOUNT", "STATUS", "DESCRIPTION")))
	b.WriteString("\n")

	for i := range entries {
		e := &entries[i]
		amount := fmt.Sprintf("%12.2f", e.Amount)
		if e.IsCredit() {
			amount = SuccessStyle.Render(amount)
		} else {
			amount = ErrorStyle.Render(amount)
		}
		b.WriteString(fmt.Sprintf("%-12s %-10s %s  %-11s %s\n",
			truncate(e.ID, 12), e.Date.Format("2006-01-02"), amount, e.Status,
			truncate(e.Description, 48)))
	}
	return b.String()
}

// FormatClassification renders one stored verdict with its match variant.
func FormatClassification(c *model.Classification) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  confidence %d/100\n",
		TitleStyle.Render(string(c.Intent)), c.Confidence))
	b.WriteString(SubtleStyle.Render(c.Explanation))
	b.WriteString("\n")

	switch m := c.Match.(type) {
	case model.SingleMatch:
		b.WriteString(fmt.Sprintf("matched: %s (%s %s)\n",
			m.Candidate.DisplayName(), m.Candidate.Kind, m.Candidate.ID))
	case model.GroupMatch:
		b.WriteString(fmt.Sprintf("grouped: %d entries totalling %.2f against %s\n",
			len(m.Entries), m.Total, m.Candidate.DisplayName()))
		for i := range m.Entries {
			b.WriteString(fmt.Sprintf("  %s  %.2f  %s\n",
				m.Entries[i].Date.Format("2006-01-02"), m.Entries[i].Amount,
				truncate(m.Entries[i].Description, 40)))
		}
	case model.NoMatch:
		b.WriteString(SubtleStyle.Render("no match suggested"))
		b.WriteString("\n")
	}

	if c.Split != nil {
		b.WriteString(fmt.Sprintf("split: principal %.2f, interest %.2f, fees %.2f\n",
			c.Split.Principal, c.Split.Interest, c.Split.Fees))
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
