package memory

import (
	"sync"

	"github.com/docmirror/docmirror-cli/internal/core/domain"
	"github.com/docmirror/docmirror-cli/internal/core/ports/driven"
)

// Ensure DocStore implements the interface.
var _ driven.DocumentStore = (*DocStore)(nil)

// DocStore is an in-memory implementation of driven.DocumentStore.
type DocStore struct {
	mu    sync.RWMutex
	docs  map[string][]byte
	wrote map[string]int
}

// NewDocStore creates a new in-memory document store.
func NewDocStore() *DocStore {
	return &DocStore{
		docs:  make(map[string][]byte),
		wrote: make(map[string]int),
	}
}

// Read returns the stored content for filename, or domain.ErrNotFound.
func (s *DocStore) Read(filename string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.docs[filename]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

// Write replaces the stored copy for filename.
func (s *DocStore) Write(filename string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(content))
	copy(stored, content)
	s.docs[filename] = stored
	s.wrote[filename]++
	return nil
}

// Dir returns a placeholder directory name.
func (s *DocStore) Dir() string {
	return "memory"
}

// WriteCount reports how many times filename was written. Test helper.
func (s *DocStore) WriteCount(filename string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wrote[filename]
}
