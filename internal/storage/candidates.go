package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quillfin/ledgermatch/internal/model"
)

// SaveCandidates replaces the candidate snapshot. Candidates are a read-only
// view of the lender's own records; each load supersedes the previous one.
func (s *SQLiteStorage) SaveCandidates(ctx context.Context, candidates []model.Candidate) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM candidates`); err != nil {
		return fmt.Errorf("failed to clear candidate snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO candidates
			(id, kind, due_date, personal_name, business_name, label, number, status, amount, principal_due, interest_due)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range candidates {
		c := &candidates[i]
		if c.ID == "" {
			return fmt.Errorf("candidate at index %d has no id", i)
		}
		if _, err := stmt.ExecContext(ctx,
			c.ID, c.Kind, c.DueDate, c.PersonalName, c.BusinessName,
			c.Label, c.Number, c.Status, c.Amount, c.PrincipalDue, c.InterestDue); err != nil {
			return fmt.Errorf("failed to insert candidate %q: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

// GetCandidates returns the full candidate snapshot.
func (s *SQLiteStorage) GetCandidates(ctx context.Context) ([]model.Candidate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, due_date,
			COALESCE(personal_name, ''), COALESCE(business_name, ''),
			COALESCE(label, ''), COALESCE(number, ''), COALESCE(status, ''),
			amount, principal_due, interest_due
		FROM candidates ORDER BY kind, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var candidates []model.Candidate
	for rows.Next() {
		var c model.Candidate
		var dueDate sql.NullTime
		if err := rows.Scan(&c.ID, &c.Kind, &dueDate, &c.PersonalName, &c.BusinessName,
			&c.Label, &c.Number, &c.Status, &c.Amount, &c.PrincipalDue, &c.InterestDue); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if dueDate.Valid {
			c.DueDate = dueDate.Time
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
