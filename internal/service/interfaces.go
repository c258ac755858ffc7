// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/quillfin/ledgermatch/internal/model"
)

// EntryFilter defines filtering options for bank entry queries.
type EntryFilter struct {
	Status *model.EntryStatus
	Pot    *model.Pot
	Limit  int
}

// Storage defines the contract for the persistence layer. The matching
// engine itself is pure; storage belongs to the enclosing workflow.
type Storage interface {
	// Bank entry operations
	SaveEntries(ctx context.Context, entries []model.BankEntry) error
	GetEntries(ctx context.Context, filter EntryFilter) ([]model.BankEntry, error)
	GetEntryByID(ctx context.Context, id string) (*model.BankEntry, error)
	UpdateEntryStatus(ctx context.Context, id string, status model.EntryStatus) error
	AssignPot(ctx context.Context, entryID string, pot model.Pot) error

	// Candidate snapshot operations
	SaveCandidates(ctx context.Context, candidates []model.Candidate) error
	GetCandidates(ctx context.Context) ([]model.Candidate, error)

	// Classification operations
	SaveClassification(ctx context.Context, classification *model.Classification) error
	GetClassification(ctx context.Context, entryID string) (*model.Classification, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// Classifier produces a classification for one bank entry given a candidate
// snapshot and the entry's sibling set.
type Classifier interface {
	Classify(entry model.BankEntry, candidates []model.Candidate, siblings []model.BankEntry) model.Classification
}
