package driven

import (
	"context"

	"github.com/docmirror/docmirror-cli/internal/core/domain"
)

// Fetcher performs bounded HTTP downloads from the documentation site.
type Fetcher interface {
	// Preflight verifies the fetch capability before a run begins:
	// the base URL must use secure transport and the index URL must
	// be reachable. Returns nil if ready to sync, an error describing
	// the problem otherwise.
	Preflight(ctx context.Context) error

	// FetchIndex downloads the index document and returns its raw
	// bytes. The request is bounded by the site's fetch timeout.
	FetchIndex(ctx context.Context) ([]byte, error)

	// FetchDocument downloads one document into the scratch workspace
	// and applies the payload gates (transport, empty, oversize).
	// A gate failure is returned as *domain.FetchError; the target
	// store is never touched.
	FetchDocument(ctx context.Context, path string) (*domain.FetchResult, error)
}
