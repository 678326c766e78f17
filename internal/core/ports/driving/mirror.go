package driving

import (
	"context"

	"github.com/docmirror/docmirror-cli/internal/core/domain"
)

// Mirror runs one full mirror pass: preflight, discovery, sequential
// sync, summary.
type Mirror interface {
	// Run executes the pass and returns the summary. The returned
	// error is fatal (dependency, discovery, or cancellation);
	// individual fetch failures are reflected in the summary counts,
	// not in the error.
	Run(ctx context.Context) (*domain.RunSummary, error)
}
