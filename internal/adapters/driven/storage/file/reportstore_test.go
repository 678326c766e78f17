package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmirror/docmirror-cli/internal/core/domain"
)

func TestReportStore_AppendsLines(t *testing.T) {
	reportsDir := filepath.Join(t.TempDir(), "reports")
	startedAt := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)

	store, err := NewReportStore(reportsDir, startedAt)
	require.NoError(t, err)

	require.NoError(t, store.Append(domain.ReportEntry{Filename: "overview.md", Outcome: domain.OutcomeNew}))
	require.NoError(t, store.Append(domain.ReportEntry{Filename: "quickstart.md", Outcome: domain.OutcomeFailed}))
	require.NoError(t, store.Close())

	// Report files are timestamped per run.
	assert.Equal(t, filepath.Join(reportsDir, "sync-report-20260829-153000.txt"), store.Path())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "NEW overview.md\nFAILED quickstart.md\n", string(data))
}

func TestReportStore_EmptyRun(t *testing.T) {
	store, err := NewReportStore(t.TempDir(), time.Now())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Empty(t, data)
}
