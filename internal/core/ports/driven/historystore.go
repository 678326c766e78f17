package driven

import (
	"context"
	"time"

	"github.com/docmirror/docmirror-cli/internal/core/domain"
)

// HistoryStore persists completed runs for later inspection.
type HistoryStore interface {
	// SaveRun records a completed run, its outcome entries and its
	// summary counts.
	SaveRun(ctx context.Context, report *domain.RunReport, summary domain.RunSummary, finishedAt time.Time) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// Close releases the underlying storage.
	Close() error
}
