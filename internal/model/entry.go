// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"math"
	"time"
)

// EntryStatus tracks where a bank entry is in the reconciliation workflow.
type EntryStatus string

// Entry status constants.
const (
	EntryStatusImported   EntryStatus = "IMPORTED"
	EntryStatusSuggested  EntryStatus = "SUGGESTED"
	EntryStatusConfirmed  EntryStatus = "CONFIRMED"
	EntryStatusReconciled EntryStatus = "RECONCILED"
)

// BankEntry is one imported bank-statement line. The matching engine never
// mutates it; classification results are attached alongside.
type BankEntry struct {
	Date        time.Time
	ID          string
	Description string
	Reference   string
	Status      EntryStatus
	Amount      float64
}

// IsCredit reports whether the entry is money in (positive amount).
func (e *BankEntry) IsCredit() bool {
	return e.Amount > 0
}

// AbsAmount returns the unsigned amount.
func (e *BankEntry) AbsAmount() float64 {
	return math.Abs(e.Amount)
}

// Validate ensures the entry is usable by the engine.
func (e *BankEntry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("entry id is required")
	}
	if e.Amount == 0 {
		return fmt.Errorf("entry amount must be non-zero")
	}
	return nil
}
