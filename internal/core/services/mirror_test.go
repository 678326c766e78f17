package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmirror/docmirror-cli/internal/adapters/driven/storage/memory"
	"github.com/docmirror/docmirror-cli/internal/core/domain"
)

func newTestMirror(t *testing.T, fetcher *mockFetcher, history *mockHistory) *Mirror {
	t.Helper()

	validator, err := NewValidator(fetcher.site.PathPrefix)
	require.NoError(t, err)
	discoverer, err := NewDiscoverer(fetcher.site, fetcher, validator)
	require.NoError(t, err)

	engine := NewSyncEngine(fetcher.site, fetcher, memory.NewDocStore(), memory.NewReportStore())
	runCtx := domain.RunContext{RunID: "run-1", StartedAt: time.Now()}

	if history == nil {
		return NewMirror(runCtx, fetcher, discoverer, engine, nil)
	}
	return NewMirror(runCtx, fetcher, discoverer, engine, history)
}

func TestMirror_Run(t *testing.T) {
	fetcher := newMockFetcher(domain.DefaultSite())
	fetcher.indexBody = []byte(`
		<a href="/en/docs/claude-code/overview">Overview</a>
		<a href="/en/docs/claude-code/quickstart">Quickstart</a>
	`)
	fetcher.docs["/en/docs/claude-code/overview"] = []byte("# Overview\n")
	fetcher.docErrs["/en/docs/claude-code/quickstart"] = &domain.FetchError{
		Path:     "/en/docs/claude-code/quickstart",
		Category: domain.FailureEmpty,
	}
	history := &mockHistory{}

	summary, err := newTestMirror(t, fetcher, history).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Discovered)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)

	// The completed run was recorded.
	require.Len(t, history.saved, 1)
	assert.Equal(t, "run-1", history.saved[0].ID)
	assert.Equal(t, *summary, history.saved[0].Summary)
}

func TestMirror_Run_PreflightFails(t *testing.T) {
	fetcher := newMockFetcher(domain.DefaultSite())
	fetcher.preflightErr = errors.New("index unreachable")

	_, err := newTestMirror(t, fetcher, nil).Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDependency)
	// Nothing was fetched after the failed preflight.
	assert.Empty(t, fetcher.fetched)
}

func TestMirror_Run_DiscoveryFails(t *testing.T) {
	fetcher := newMockFetcher(domain.DefaultSite())
	fetcher.indexBody = []byte("no links")

	_, err := newTestMirror(t, fetcher, nil).Run(context.Background())

	assert.ErrorIs(t, err, domain.ErrDiscovery)
	assert.Empty(t, fetcher.fetched)
}

func TestMirror_Run_HistoryFailureIsNonFatal(t *testing.T) {
	fetcher := newMockFetcher(domain.DefaultSite())
	fetcher.indexBody = []byte(`<a href="/en/docs/claude-code/overview">Overview</a>`)
	fetcher.docs["/en/docs/claude-code/overview"] = []byte("# Overview\n")
	history := &mockHistory{saveErr: errors.New("disk full")}

	summary, err := newTestMirror(t, fetcher, history).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
}
