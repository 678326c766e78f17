package services

import (
	"context"
	"fmt"
	"time"

	"github.com/docmirror/docmirror-cli/internal/core/domain"
	"github.com/docmirror/docmirror-cli/internal/core/ports/driven"
	"github.com/docmirror/docmirror-cli/internal/core/ports/driving"
	"github.com/docmirror/docmirror-cli/internal/logger"
)

// Ensure Mirror implements the interface.
var _ driving.Mirror = (*Mirror)(nil)

// Mirror orchestrates one run: preflight, discovery, sequential sync,
// summary, history.
type Mirror struct {
	runCtx     domain.RunContext
	fetcher    driven.Fetcher
	discoverer *Discoverer
	engine     *SyncEngine
	history    driven.HistoryStore
}

// NewMirror creates a mirror orchestrator. The history store is
// optional; when nil, completed runs are not recorded.
func NewMirror(
	runCtx domain.RunContext,
	fetcher driven.Fetcher,
	discoverer *Discoverer,
	engine *SyncEngine,
	history driven.HistoryStore,
) *Mirror {
	return &Mirror{
		runCtx:     runCtx,
		fetcher:    fetcher,
		discoverer: discoverer,
		engine:     engine,
		history:    history,
	}
}

// Run executes the mirror pass. Dependency and discovery failures are
// fatal and abort before any document fetch; per-document failures are
// recorded in the summary and never abort the run.
func (m *Mirror) Run(ctx context.Context) (*domain.RunSummary, error) {
	logger.Section("Preflight")
	if err := m.fetcher.Preflight(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDependency, err)
	}

	logger.Section("Discovery")
	paths, err := m.discoverer.Discover(ctx)
	if err != nil {
		return nil, err
	}

	logger.Section("Sync")
	report, err := m.engine.SyncAll(ctx, m.runCtx.RunID, m.runCtx.StartedAt, paths)
	if err != nil {
		return nil, err
	}

	summary := Summarise(report)
	logger.Info("Sync complete: %d documents, %d failures", summary.Discovered, summary.Failed)

	if m.history != nil {
		if err := m.history.SaveRun(ctx, report, summary, time.Now()); err != nil {
			// History is bookkeeping; never fail the run over it.
			logger.Warn("Could not record run history: %v", err)
		}
	}

	return &summary, nil
}
