package domain

// FetchResult represents a successfully staged download.
// It is created per fetch attempt, consumed immediately by the sync
// engine for comparison, and discarded afterwards.
type FetchResult struct {
	// Path is the document path that was fetched.
	Path string

	// Filename is the derived local filename for the document.
	Filename string

	// ScratchPath is the staged copy inside the run's scratch
	// workspace. The target store is never written by the fetcher.
	ScratchPath string

	// Content is the downloaded payload.
	Content []byte

	// Size is the payload size in bytes.
	Size int64
}
