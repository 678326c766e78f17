package memory

import (
	"sync"

	"github.com/docmirror/docmirror-cli/internal/core/domain"
	"github.com/docmirror/docmirror-cli/internal/core/ports/driven"
)

// Ensure ReportStore implements the interface.
var _ driven.ReportStore = (*ReportStore)(nil)

// ReportStore is an in-memory implementation of driven.ReportStore.
type ReportStore struct {
	mu      sync.RWMutex
	entries []domain.ReportEntry
}

// NewReportStore creates a new in-memory report store.
func NewReportStore() *ReportStore {
	return &ReportStore{}
}

// Append records one outcome entry.
func (s *ReportStore) Append(entry domain.ReportEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// Path returns a placeholder path.
func (s *ReportStore) Path() string {
	return "memory"
}

// Close is a no-op.
func (s *ReportStore) Close() error {
	return nil
}

// Entries returns the recorded entries. Test helper.
func (s *ReportStore) Entries() []domain.ReportEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ReportEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
