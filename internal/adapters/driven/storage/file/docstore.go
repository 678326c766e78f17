package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/docmirror/docmirror-cli/internal/core/domain"
	"github.com/docmirror/docmirror-cli/internal/core/ports/driven"
)

// Ensure DocStore implements the interface.
var _ driven.DocumentStore = (*DocStore)(nil)

// DocStore is the permanent target store: one flat directory, one
// file per document. Mutated only by the sync engine, only when new
// content differs from the stored copy.
type DocStore struct {
	dir string
}

// NewDocStore creates a document store at dir, creating the directory
// if needed.
func NewDocStore(dir string) (*DocStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create target store: %w", err)
	}
	return &DocStore{dir: dir}, nil
}

// Read returns the stored content for filename, or domain.ErrNotFound.
func (s *DocStore) Read(filename string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Write replaces the stored copy for filename.
func (s *DocStore) Write(filename string, content []byte) error {
	return os.WriteFile(filepath.Join(s.dir, filename), content, 0644)
}

// Dir returns the store directory.
func (s *DocStore) Dir() string {
	return s.dir
}
