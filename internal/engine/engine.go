// Package engine orchestrates batch classification: it pulls unclassified
// bank entries and the candidate snapshot from storage, fans per-entry
// classification out across workers, and writes the verdicts and pot
// assignments back. Classification of each entry is independent of every
// other's; workers share only read-only views of the batch.
package engine

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/quillfin/ledgermatch/internal/common"
	"github.com/quillfin/ledgermatch/internal/model"
	"github.com/quillfin/ledgermatch/internal/service"
)

// Config controls batch classification behavior.
type Config struct {
	// Workers bounds the classification fan-out. Zero means GOMAXPROCS.
	Workers int
	// ShowProgress renders a terminal progress bar during the batch.
	ShowProgress bool
}

// DefaultConfig returns sensible engine defaults.
func DefaultConfig() Config {
	return Config{
		Workers:      runtime.GOMAXPROCS(0),
		ShowProgress: true,
	}
}

// Engine runs batch classification over storage.
type Engine struct {
	storage    service.Storage
	classifier service.Classifier
	config     Config
}

// New creates an engine with default configuration.
func New(storage service.Storage, classifier service.Classifier) *Engine {
	return NewWithConfig(storage, classifier, DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(storage service.Storage, classifier service.Classifier, config Config) *Engine {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	return &Engine{
		storage:    storage,
		classifier: classifier,
		config:     config,
	}
}

// Summary aggregates one classification run.
type Summary struct {
	ByIntent  map[model.Intent]int
	Total     int
	Suggested int
	Grouped   int
	Unknown   int
}

// ClassifyAll classifies every imported-but-unclassified entry, saves the
// verdicts, and assigns pots. Entries the engine cannot place stay in the
// unclassified pot; that is a valid resting state, not a failure.
func (e *Engine) ClassifyAll(ctx context.Context) (*Summary, error) {
	status := model.EntryStatusImported
	entries, err := e.storage.GetEntries(ctx, service.EntryFilter{Status: &status})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, common.ErrNoEntries
	}

	candidates, err := e.storage.GetCandidates(ctx)
	if err != nil {
		return nil, err
	}

	slog.Info("Starting classification batch",
		"entries", len(entries),
		"candidates", len(candidates),
		"workers", e.config.Workers)

	var bar *progressbar.ProgressBar
	if e.config.ShowProgress {
		bar = progressbar.NewOptions(len(entries),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Classifying entries..."))
	}

	// Fan out per entry; each worker reads the shared batch and candidate
	// snapshot but writes only its own result slot.
	results := make([]model.Classification, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.Workers)

	for i := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.classifier.Classify(entries[i], candidates, entries)
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return e.store(ctx, entries, results)
}

// store persists results and moves entries through the workflow.
func (e *Engine) store(ctx context.Context, entries []model.BankEntry, results []model.Classification) (*Summary, error) {
	summary := &Summary{
		ByIntent: make(map[model.Intent]int),
		Total:    len(entries),
	}

	for i := range results {
		c := &results[i]
		if err := e.storage.SaveClassification(ctx, c); err != nil {
			return nil, err
		}
		if err := e.storage.AssignPot(ctx, c.EntryID, model.PotForIntent(c.Intent)); err != nil {
			return nil, err
		}

		summary.ByIntent[c.Intent]++
		switch c.Match.(type) {
		case model.NoMatch:
			summary.Unknown++
			continue
		case model.GroupMatch:
			summary.Grouped++
		}
		summary.Suggested++

		if err := e.storage.UpdateEntryStatus(ctx, c.EntryID, model.EntryStatusSuggested); err != nil {
			return nil, err
		}
	}

	slog.Info("Classification batch complete",
		"total", summary.Total,
		"suggested", summary.Suggested,
		"grouped", summary.Grouped,
		"unknown", summary.Unknown)

	return summary, nil
}
