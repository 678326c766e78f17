package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/docmirror/docmirror-cli/internal/core/domain"
	"github.com/docmirror/docmirror-cli/internal/core/ports/driven"
	"github.com/docmirror/docmirror-cli/internal/logger"
)

// SyncEngine applies differential synchronisation: for each discovered
// path it fetches the document, compares it byte-for-byte against the
// target store and applies exactly one of new, updated, unchanged or
// failed.
type SyncEngine struct {
	site    domain.Site
	fetcher driven.Fetcher
	store   driven.DocumentStore
	reports driven.ReportStore
}

// NewSyncEngine creates a sync engine.
func NewSyncEngine(site domain.Site, fetcher driven.Fetcher, store driven.DocumentStore, reports driven.ReportStore) *SyncEngine {
	return &SyncEngine{
		site:    site,
		fetcher: fetcher,
		store:   store,
		reports: reports,
	}
}

// SyncAll processes every path in set order, appending one outcome per
// path to the run report. A failed fetch is recorded and skipped, not
// retried; the loop never aborts on a per-document failure. The only
// error returned is context cancellation.
func (e *SyncEngine) SyncAll(ctx context.Context, runID string, startedAt time.Time, paths []string) (*domain.RunReport, error) {
	report := domain.NewRunReport(runID, startedAt)

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		filename := e.site.Filename(path)
		outcome, err := e.syncOne(ctx, path, filename)
		if err != nil {
			// A per-request timeout is a recorded failure; only the
			// run context being cancelled aborts the loop.
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			logger.Error("Failed %s: %v", filename, err)
			outcome = domain.OutcomeFailed
		}

		report.Append(filename, outcome)
		if err := e.appendReport(filename, outcome); err != nil {
			logger.Warn("Could not write report entry for %s: %v", filename, err)
		}
	}

	return report, nil
}

// syncOne fetches one document and reconciles it with the store.
func (e *SyncEngine) syncOne(ctx context.Context, path, filename string) (domain.Outcome, error) {
	logger.Debug("Fetching %s", path)

	result, err := e.fetcher.FetchDocument(ctx, path)
	if err != nil {
		return domain.OutcomeFailed, err
	}

	existing, err := e.store.Read(filename)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if err := e.store.Write(filename, result.Content); err != nil {
			return domain.OutcomeFailed, fmt.Errorf("write %s: %w", filename, err)
		}
		logger.Info("New document: %s (%d bytes)", filename, result.Size)
		return domain.OutcomeNew, nil

	case err != nil:
		return domain.OutcomeFailed, fmt.Errorf("read %s: %w", filename, err)

	case bytes.Equal(existing, result.Content):
		logger.Debug("Unchanged: %s", filename)
		return domain.OutcomeUnchanged, nil

	default:
		if err := e.store.Write(filename, result.Content); err != nil {
			return domain.OutcomeFailed, fmt.Errorf("write %s: %w", filename, err)
		}
		logger.Info("Updated document: %s (%d bytes)", filename, result.Size)
		return domain.OutcomeUpdated, nil
	}
}

// appendReport persists one outcome line, if a report store is wired.
func (e *SyncEngine) appendReport(filename string, outcome domain.Outcome) error {
	if e.reports == nil {
		return nil
	}
	return e.reports.Append(domain.ReportEntry{Filename: filename, Outcome: outcome})
}
