package engine

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillfin/ledgermatch/internal/classify"
	"github.com/quillfin/ledgermatch/internal/common"
	"github.com/quillfin/ledgermatch/internal/model"
	"github.com/quillfin/ledgermatch/internal/service"
)

// mockStorage is an in-memory service.Storage for engine tests.
type mockStorage struct {
	mu              sync.Mutex
	entries         map[string]model.BankEntry
	candidates      []model.Candidate
	classifications map[string]model.Classification
	pots            map[string]model.Pot
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		entries:         make(map[string]model.BankEntry),
		classifications: make(map[string]model.Classification),
		pots:            make(map[string]model.Pot),
	}
}

func (m *mockStorage) SaveEntries(_ context.Context, entries []model.BankEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		m.entries[e.ID] = e
	}
	return nil
}

func (m *mockStorage) GetEntries(_ context.Context, filter service.EntryFilter) ([]model.BankEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.BankEntry
	for _, e := range m.entries {
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if filter.Pot != nil && m.pots[e.ID] != *filter.Pot {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *mockStorage) GetEntryByID(_ context.Context, id string) (*model.BankEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &e, nil
}

func (m *mockStorage) UpdateEntryStatus(_ context.Context, id string, status model.EntryStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return common.ErrNotFound
	}
	e.Status = status
	m.entries[id] = e
	return nil
}

func (m *mockStorage) AssignPot(_ context.Context, entryID string, pot model.Pot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[entryID]; !ok {
		return common.ErrNotFound
	}
	m.pots[entryID] = pot
	return nil
}

func (m *mockStorage) SaveCandidates(_ context.Context, candidates []model.Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.candidates = candidates
	return nil
}

func (m *mockStorage) GetCandidates(_ context.Context) ([]model.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.candidates, nil
}

func (m *mockStorage) SaveClassification(_ context.Context, c *model.Classification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.classifications[c.EntryID] = *c
	return nil
}

func (m *mockStorage) GetClassification(_ context.Context, entryID string) (*model.Classification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.classifications[entryID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &c, nil
}

func (m *mockStorage) Migrate(_ context.Context) error { return nil }
func (m *mockStorage) Close() error                    { return nil }

func testDate(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func testConfig() Config {
	return Config{Workers: 4, ShowProgress: false}
}

func TestClassifyAll(t *testing.T) {
	ctx := context.Background()
	store := newMockStorage()

	require.NoError(t, store.SaveEntries(ctx, []model.BankEntry{
		{ID: "e1", Date: testDate("2025-03-15"), Amount: 1000,
			Description: "FPI J SMITH LOAN REPAY", Status: model.EntryStatusImported},
		{ID: "e2", Date: testDate("2025-03-16"), Amount: -79.99,
			Description: "CLOUDHOST LTD", Status: model.EntryStatusImported},
		{ID: "e3", Date: testDate("2025-03-17"), Amount: 13.37,
			Description: "MYSTERY CREDIT", Status: model.EntryStatusImported},
	}))
	require.NoError(t, store.SaveCandidates(ctx, []model.Candidate{
		{ID: "inst-1", Kind: model.KindInstallment, DueDate: testDate("2025-03-14"),
			PersonalName: "John Smith", Amount: 1000, PrincipalDue: 800, InterestDue: 200},
		{ID: "exp-1", Kind: model.KindExpenseType, DueDate: testDate("2025-03-16"),
			Label: "Hosting", BusinessName: "Cloudhost Ltd", Amount: 79.99},
	}))

	summary, err := NewWithConfig(store, classify.NewResolver(), testConfig()).ClassifyAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Suggested)
	assert.Equal(t, 1, summary.Unknown)
	assert.Equal(t, 1, summary.ByIntent[model.IntentLoanRepayment])
	assert.Equal(t, 1, summary.ByIntent[model.IntentOperatingExpense])
	assert.Equal(t, 1, summary.ByIntent[model.IntentUnknown])

	// Pots follow intents.
	assert.Equal(t, model.PotLoans, store.pots["e1"])
	assert.Equal(t, model.PotExpenses, store.pots["e2"])
	assert.Equal(t, model.PotUnclassified, store.pots["e3"])

	// Suggested entries moved on; the unknown one stays imported.
	e1, err := store.GetEntryByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, model.EntryStatusSuggested, e1.Status)

	e3, err := store.GetEntryByID(ctx, "e3")
	require.NoError(t, err)
	assert.Equal(t, model.EntryStatusImported, e3.Status)

	// Every entry got a stored verdict.
	for _, id := range []string{"e1", "e2", "e3"} {
		_, err := store.GetClassification(ctx, id)
		assert.NoError(t, err, "classification missing for %s", id)
	}
}

func TestClassifyAll_NoEntries(t *testing.T) {
	_, err := NewWithConfig(newMockStorage(), classify.NewResolver(), testConfig()).
		ClassifyAll(context.Background())
	assert.ErrorIs(t, err, common.ErrNoEntries)
}

func TestClassifyAll_ManyEntriesParallel(t *testing.T) {
	ctx := context.Background()
	store := newMockStorage()

	var entries []model.BankEntry
	for i := 0; i < 200; i++ {
		entries = append(entries, model.BankEntry{
			ID:          fmt.Sprintf("e%03d", i),
			Date:        testDate("2025-03-15"),
			Amount:      float64(10 + i),
			Description: fmt.Sprintf("CREDIT %03d", i),
			Status:      model.EntryStatusImported,
		})
	}
	require.NoError(t, store.SaveEntries(ctx, entries))

	summary, err := NewWithConfig(store, classify.NewResolver(), testConfig()).ClassifyAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, 200, summary.Total)
	assert.Equal(t, 200, summary.Unknown, "no candidates means everything is unknown")
	assert.Len(t, store.classifications, 200)
}
