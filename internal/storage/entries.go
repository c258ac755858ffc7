package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/quillfin/ledgermatch/internal/common"
	"github.com/quillfin/ledgermatch/internal/model"
	"github.com/quillfin/ledgermatch/internal/service"
)

// SaveEntries inserts bank entries, skipping ids already present so a
// re-imported statement never duplicates lines.
func (s *SQLiteStorage) SaveEntries(ctx context.Context, entries []model.BankEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO entries (id, date, amount, description, reference, status)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range entries {
		e := &entries[i]
		if err := e.Validate(); err != nil {
			return fmt.Errorf("invalid entry %q: %w", e.ID, err)
		}
		status := e.Status
		if status == "" {
			status = model.EntryStatusImported
		}
		if _, err := stmt.ExecContext(ctx, e.ID, e.Date, e.Amount, e.Description, e.Reference, status); err != nil {
			return fmt.Errorf("failed to insert entry %q: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

// GetEntries returns entries matching the filter, newest first.
func (s *SQLiteStorage) GetEntries(ctx context.Context, filter service.EntryFilter) ([]model.BankEntry, error) {
	query := `SELECT id, date, amount, description, COALESCE(reference, ''), status FROM entries`

	var conds []string
	var args []any
	if filter.Status != nil {
		conds = append(conds, "status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Pot != nil {
		conds = append(conds, "pot = ?")
		args = append(args, string(*filter.Pot))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC, id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.BankEntry
	for rows.Next() {
		var e model.BankEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Amount, &e.Description, &e.Reference, &e.Status); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetEntryByID returns one entry or common.ErrNotFound.
func (s *SQLiteStorage) GetEntryByID(ctx context.Context, id string) (*model.BankEntry, error) {
	var e model.BankEntry
	err := s.db.QueryRowContext(ctx, `
		SELECT id, date, amount, description, COALESCE(reference, ''), status
		FROM entries WHERE id = ?`, id).
		Scan(&e.ID, &e.Date, &e.Amount, &e.Description, &e.Reference, &e.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("entry %q: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry %q: %w", id, err)
	}
	return &e, nil
}

// UpdateEntryStatus moves an entry through its workflow lifecycle.
func (s *SQLiteStorage) UpdateEntryStatus(ctx context.Context, id string, status model.EntryStatus) error {
	res, err := s.db.ExecContext(ctx, `UPDATE entries SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update entry status: %w", err)
	}
	return requireRow(res, id)
}

// AssignPot places an entry in a workflow bucket pending confirmation.
func (s *SQLiteStorage) AssignPot(ctx context.Context, entryID string, pot model.Pot) error {
	res, err := s.db.ExecContext(ctx, `UPDATE entries SET pot = ? WHERE id = ?`, pot, entryID)
	if err != nil {
		return fmt.Errorf("failed to assign pot: %w", err)
	}
	return requireRow(res, entryID)
}

// requireRow converts a zero-row update into ErrNotFound.
func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("entry %q: %w", id, common.ErrNotFound)
	}
	return nil
}
