package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/quillfin/ledgermatch/internal/common"
	"github.com/quillfin/ledgermatch/internal/model"
)

// Match variant discriminators as stored.
const (
	matchTypeNone   = "none"
	matchTypeSingle = "single"
	matchTypeGroup  = "group"
)

// SaveClassification upserts the engine's verdict for one entry. Re-running
// classification overwrites the previous suggestion.
func (s *SQLiteStorage) SaveClassification(ctx context.Context, c *model.Classification) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid classification: %w", err)
	}

	var (
		matchType        = matchTypeNone
		matchCandidateID sql.NullString
		groupEntryIDs    sql.NullString
		groupTotal       sql.NullFloat64
	)

	switch m := c.Match.(type) {
	case model.SingleMatch:
		matchType = matchTypeSingle
		matchCandidateID = sql.NullString{String: m.Candidate.ID, Valid: true}
	case model.GroupMatch:
		matchType = matchTypeGroup
		matchCandidateID = sql.NullString{String: m.Candidate.ID, Valid: true}
		ids := make([]string, len(m.Entries))
		for i := range m.Entries {
			ids[i] = m.Entries[i].ID
		}
		encoded, err := json.Marshal(ids)
		if err != nil {
			return fmt.Errorf("failed to encode group entry ids: %w", err)
		}
		groupEntryIDs = sql.NullString{String: string(encoded), Valid: true}
		groupTotal = sql.NullFloat64{Float64: m.Total, Valid: true}
	case model.NoMatch:
	}

	var splitPrincipal, splitInterest, splitFees sql.NullFloat64
	if c.Split != nil {
		splitPrincipal = sql.NullFloat64{Float64: c.Split.Principal, Valid: true}
		splitInterest = sql.NullFloat64{Float64: c.Split.Interest, Valid: true}
		splitFees = sql.NullFloat64{Float64: c.Split.Fees, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO classifications
			(entry_id, intent, confidence, explanation, match_type, match_candidate_id,
			 group_entry_ids, group_total, split_principal, split_interest, split_fees, classified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(entry_id) DO UPDATE SET
			intent = excluded.intent,
			confidence = excluded.confidence,
			explanation = excluded.explanation,
			match_type = excluded.match_type,
			match_candidate_id = excluded.match_candidate_id,
			group_entry_ids = excluded.group_entry_ids,
			group_total = excluded.group_total,
			split_principal = excluded.split_principal,
			split_interest = excluded.split_interest,
			split_fees = excluded.split_fees,
			classified_at = excluded.classified_at`,
		c.EntryID, c.Intent, c.Confidence, c.Explanation, matchType, matchCandidateID,
		groupEntryIDs, groupTotal, splitPrincipal, splitInterest, splitFees, c.ClassifiedAt)
	if err != nil {
		return fmt.Errorf("failed to save classification for %q: %w", c.EntryID, err)
	}
	return nil
}

// GetClassification returns the stored verdict for one entry, with its match
// variant rehydrated, or common.ErrNotFound.
func (s *SQLiteStorage) GetClassification(ctx context.Context, entryID string) (*model.Classification, error) {
	var (
		c                model.Classification
		matchType        string
		matchCandidateID sql.NullString
		groupEntryIDs    sql.NullString
		groupTotal       sql.NullFloat64
		splitPrincipal   sql.NullFloat64
		splitInterest    sql.NullFloat64
		splitFees        sql.NullFloat64
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT entry_id, intent, confidence, COALESCE(explanation, ''), match_type,
			match_candidate_id, group_entry_ids, group_total,
			split_principal, split_interest, split_fees, classified_at
		FROM classifications WHERE entry_id = ?`, entryID).
		Scan(&c.EntryID, &c.Intent, &c.Confidence, &c.Explanation, &matchType,
			&matchCandidateID, &groupEntryIDs, &groupTotal,
			&splitPrincipal, &splitInterest, &splitFees, &c.ClassifiedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("classification for %q: %w", entryID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get classification for %q: %w", entryID, err)
	}

	match, err := s.rehydrateMatch(ctx, matchType, matchCandidateID, groupEntryIDs, groupTotal)
	if err != nil {
		return nil, err
	}
	c.Match = match

	if splitPrincipal.Valid {
		c.Split = &model.Split{
			Principal: splitPrincipal.Float64,
			Interest:  splitInterest.Float64,
			Fees:      splitFees.Float64,
		}
	}

	return &c, nil
}

// rehydrateMatch rebuilds the SuggestedMatch variant from its stored parts.
func (s *SQLiteStorage) rehydrateMatch(ctx context.Context, matchType string,
	candidateID, groupEntryIDs sql.NullString, groupTotal sql.NullFloat64) (model.SuggestedMatch, error) {

	switch matchType {
	case matchTypeSingle:
		cand, err := s.getCandidateByID(ctx, candidateID.String)
		if err != nil {
			return nil, err
		}
		return model.SingleMatch{Candidate: *cand}, nil

	case matchTypeGroup:
		cand, err := s.getCandidateByID(ctx, candidateID.String)
		if err != nil {
			return nil, err
		}

		var ids []string
		if err := json.Unmarshal([]byte(groupEntryIDs.String), &ids); err != nil {
			return nil, fmt.Errorf("failed to decode group entry ids: %w", err)
		}
		entries, err := s.getEntriesByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		return model.GroupMatch{Candidate: *cand, Entries: entries, Total: groupTotal.Float64}, nil

	default:
		return model.NoMatch{}, nil
	}
}

func (s *SQLiteStorage) getCandidateByID(ctx context.Context, id string) (*model.Candidate, error) {
	var c model.Candidate
	var dueDate sql.NullTime
	err := s.db.QueryRowContext(ctx, `
		SELECT id, kind, due_date,
			COALESCE(personal_name, ''), COALESCE(business_name, ''),
			COALESCE(label, ''), COALESCE(number, ''), COALESCE(status, ''),
			amount, principal_due, interest_due
		FROM candidates WHERE id = ?`, id).
		Scan(&c.ID, &c.Kind, &dueDate, &c.PersonalName, &c.BusinessName,
			&c.Label, &c.Number, &c.Status, &c.Amount, &c.PrincipalDue, &c.InterestDue)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("candidate %q: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate %q: %w", id, err)
	}
	if dueDate.Valid {
		c.DueDate = dueDate.Time
	}
	return &c, nil
}

func (s *SQLiteStorage) getEntriesByIDs(ctx context.Context, ids []string) ([]model.BankEntry, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, amount, description, COALESCE(reference, ''), status
		FROM entries WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query group entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	byID := make(map[string]model.BankEntry, len(ids))
	for rows.Next() {
		var e model.BankEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Amount, &e.Description, &e.Reference, &e.Status); err != nil {
			return nil, fmt.Errorf("failed to scan group entry: %w", err)
		}
		byID[e.ID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Preserve the stored group order (anchor first).
	entries := make([]model.BankEntry, 0, len(ids))
	for _, id := range ids {
		e, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("group entry %q: %w", id, common.ErrNotFound)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
