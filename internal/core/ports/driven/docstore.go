package driven

import "github.com/docmirror/docmirror-cli/internal/core/domain"

// DocumentStore is the permanent target store holding the latest
// accepted copy of each document.
type DocumentStore interface {
	// Read returns the stored content for a filename.
	// Returns domain.ErrNotFound if no copy exists.
	Read(filename string) ([]byte, error)

	// Write replaces (or creates) the stored copy for a filename.
	Write(filename string, content []byte) error

	// Dir returns the store directory.
	Dir() string
}

// ReportStore persists the per-run change report as it is written.
type ReportStore interface {
	// Append writes one outcome record to the report.
	Append(entry domain.ReportEntry) error

	// Path returns the report file location.
	Path() string

	// Close flushes and closes the report.
	Close() error
}
