package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/docmirror/docmirror-cli/internal/core/domain"
	"github.com/docmirror/docmirror-cli/internal/core/ports/driven"
)

// --- Mock implementations shared by the service tests ---

// mockFetcher implements driven.Fetcher for testing.
type mockFetcher struct {
	site         domain.Site
	preflightErr error
	indexBody    []byte
	indexErr     error
	docs         map[string][]byte
	docErrs      map[string]error
	fetched      []string
}

var _ driven.Fetcher = (*mockFetcher)(nil)

func newMockFetcher(site domain.Site) *mockFetcher {
	return &mockFetcher{
		site:    site,
		docs:    make(map[string][]byte),
		docErrs: make(map[string]error),
	}
}

func (m *mockFetcher) Preflight(_ context.Context) error {
	return m.preflightErr
}

func (m *mockFetcher) FetchIndex(_ context.Context) ([]byte, error) {
	if m.indexErr != nil {
		return nil, m.indexErr
	}
	return m.indexBody, nil
}

func (m *mockFetcher) FetchDocument(_ context.Context, path string) (*domain.FetchResult, error) {
	m.fetched = append(m.fetched, path)

	if err, ok := m.docErrs[path]; ok {
		return nil, err
	}

	content, ok := m.docs[path]
	if !ok {
		return nil, &domain.FetchError{
			Path:     path,
			Category: domain.FailureTransport,
			Err:      fmt.Errorf("unexpected status 404"),
		}
	}

	filename := m.site.Filename(path)
	return &domain.FetchResult{
		Path:     path,
		Filename: filename,
		Content:  content,
		Size:     int64(len(content)),
	}, nil
}

// mockHistory implements driven.HistoryStore for testing.
type mockHistory struct {
	mu      sync.Mutex
	saved   []domain.RunRecord
	saveErr error
}

var _ driven.HistoryStore = (*mockHistory)(nil)

func (m *mockHistory) SaveRun(_ context.Context, report *domain.RunReport, summary domain.RunSummary, finishedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, domain.RunRecord{
		ID:         report.ID,
		StartedAt:  report.StartedAt,
		FinishedAt: finishedAt,
		Summary:    summary,
	})
	return nil
}

func (m *mockHistory) ListRuns(_ context.Context, _ int) ([]domain.RunRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved, nil
}

func (m *mockHistory) Close() error { return nil }
