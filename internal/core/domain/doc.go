// Package domain defines the core business entities for docmirror.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Site: The remote documentation site being mirrored
//   - FetchResult: A staged download awaiting comparison
//   - RunReport: The append-only per-run record of document outcomes
//   - RunSummary: Aggregated counts derived from a RunReport
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
