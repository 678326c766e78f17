package domain

import "time"

// Outcome is the result of syncing one document.
type Outcome string

const (
	// OutcomeNew indicates the store had no prior copy.
	OutcomeNew Outcome = "NEW"

	// OutcomeUpdated indicates the staged content differed from the
	// stored copy and replaced it.
	OutcomeUpdated Outcome = "UPDATED"

	// OutcomeUnchanged indicates the staged content was byte-identical
	// to the stored copy; nothing was written.
	OutcomeUnchanged Outcome = "UNCHANGED"

	// OutcomeFailed indicates the fetch failed; the store is untouched.
	OutcomeFailed Outcome = "FAILED"
)

// ReportEntry is one per-document outcome record.
type ReportEntry struct {
	// Filename is the local filename the outcome applies to.
	Filename string

	// Outcome is the sync result for this document.
	Outcome Outcome
}

// String renders the entry in report-line form, e.g. "UPDATED overview.md".
func (e ReportEntry) String() string {
	return string(e.Outcome) + " " + e.Filename
}

// RunReport is the append-only ordered log of per-document outcomes
// for a single run.
type RunReport struct {
	// ID is the unique run identifier.
	ID string

	// StartedAt is when the run began.
	StartedAt time.Time

	// Entries are the outcome records in sync order.
	Entries []ReportEntry
}

// NewRunReport creates an empty report for a run.
func NewRunReport(id string, startedAt time.Time) *RunReport {
	return &RunReport{ID: id, StartedAt: startedAt}
}

// Append records one outcome.
func (r *RunReport) Append(filename string, outcome Outcome) {
	r.Entries = append(r.Entries, ReportEntry{Filename: filename, Outcome: outcome})
}

// RunSummary holds counts derived from a RunReport. Read-only,
// computed once at end of run.
type RunSummary struct {
	// Discovered is the number of documents the run attempted.
	Discovered int

	// Succeeded is the number of fetches that completed (new,
	// updated or unchanged).
	Succeeded int

	// Failed is the number of failed fetches.
	Failed int

	// New, Updated and Unchanged break down the successful outcomes.
	New       int
	Updated   int
	Unchanged int
}

// RunRecord is a persisted run as stored in the history database.
type RunRecord struct {
	// ID is the run identifier.
	ID string

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time
	FinishedAt time.Time

	// Summary holds the run's aggregate counts.
	Summary RunSummary
}
