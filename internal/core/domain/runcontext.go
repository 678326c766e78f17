package domain

import "time"

// RunContext carries the per-run paths and switches that every
// component needs. It is constructed once at startup and passed down
// explicitly; there are no ambient globals.
type RunContext struct {
	// RunID uniquely identifies this run.
	RunID string

	// StartedAt is when the run began.
	StartedAt time.Time

	// ScratchDir is the transient workspace for in-flight downloads.
	ScratchDir string

	// ReportPath is the per-run change report file.
	ReportPath string

	// LogPath is the per-run log file, empty unless keep-temp is set.
	LogPath string

	// KeepTemp retains the scratch workspace after the run instead of
	// removing it.
	KeepTemp bool
}
