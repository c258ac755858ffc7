package model

import (
	"fmt"
	"time"
)

// SuggestedMatch is the tagged variant attached to a classification: a
// single-entity match, a grouped match over several bank entries, or no
// match at all. Consumers switch on the concrete type.
type SuggestedMatch interface {
	matchKind() string
}

// SingleMatch points at one candidate record.
type SingleMatch struct {
	Candidate Candidate
}

func (SingleMatch) matchKind() string { return "single" }

// GroupMatch references a set of bank entries whose amounts together match
// one candidate's expected amount.
type GroupMatch struct {
	Candidate Candidate
	Entries   []BankEntry
	Total     float64
}

func (GroupMatch) matchKind() string { return "group" }

// NoMatch is the absence of a suggestion. It is a valid, expected result,
// not an error.
type NoMatch struct{}

func (NoMatch) matchKind() string { return "none" }

// Classification is the engine's verdict on one bank entry. It annotates
// the entry; it never mutates it. Confidence is 0-100 and never reaches
// 100: final acceptance is always a human decision.
type Classification struct {
	ClassifiedAt time.Time
	EntryID      string
	Intent       Intent
	Explanation  string
	Match        SuggestedMatch
	Split        *Split
	Confidence   int
}

// Validate ensures the classification has consistent data.
func (c *Classification) Validate() error {
	if c.EntryID == "" {
		return fmt.Errorf("entry id is required")
	}
	if c.Intent == "" {
		return fmt.Errorf("intent is required")
	}
	if c.Confidence < 0 || c.Confidence > 100 {
		return fmt.Errorf("confidence must be between 0 and 100, got %d", c.Confidence)
	}
	if c.Match == nil {
		return fmt.Errorf("match variant is required (use NoMatch for none)")
	}
	return nil
}
