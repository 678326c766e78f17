package services

import "github.com/docmirror/docmirror-cli/internal/core/domain"

// Summarise tallies a run report into per-outcome counts by linear
// scan. Pure aggregation: a nil or empty report degrades to a
// zero-valued summary.
func Summarise(report *domain.RunReport) domain.RunSummary {
	var summary domain.RunSummary
	if report == nil {
		return summary
	}

	for _, entry := range report.Entries {
		summary.Discovered++
		switch entry.Outcome {
		case domain.OutcomeNew:
			summary.New++
			summary.Succeeded++
		case domain.OutcomeUpdated:
			summary.Updated++
			summary.Succeeded++
		case domain.OutcomeUnchanged:
			summary.Unchanged++
			summary.Succeeded++
		case domain.OutcomeFailed:
			summary.Failed++
		}
	}

	return summary
}
