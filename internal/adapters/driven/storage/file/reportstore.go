package file

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/docmirror/docmirror-cli/internal/core/domain"
	"github.com/docmirror/docmirror-cli/internal/core/ports/driven"
)

// Ensure ReportStore implements the interface.
var _ driven.ReportStore = (*ReportStore)(nil)

// reportTimeFormat names report files, e.g. sync-report-20260829-153000.txt.
const reportTimeFormat = "20060102-150405"

// ReportStore appends outcome lines to a timestamped per-run report
// file under the reports directory.
type ReportStore struct {
	path string
	f    *os.File
}

// NewReportStore creates the report file for a run starting at
// startedAt, creating the reports directory if needed.
func NewReportStore(reportsDir string, startedAt time.Time) (*ReportStore, error) {
	if err := os.MkdirAll(reportsDir, 0755); err != nil {
		return nil, fmt.Errorf("create reports directory: %w", err)
	}

	path := filepath.Join(reportsDir, "sync-report-"+startedAt.Format(reportTimeFormat)+".txt")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("create report file: %w", err)
	}

	return &ReportStore{path: path, f: f}, nil
}

// Append writes one outcome line, e.g. "UPDATED overview.md".
func (s *ReportStore) Append(entry domain.ReportEntry) error {
	_, err := fmt.Fprintln(s.f, entry.String())
	return err
}

// Path returns the report file location.
func (s *ReportStore) Path() string {
	return s.path
}

// Close flushes and closes the report file.
func (s *ReportStore) Close() error {
	return s.f.Close()
}
