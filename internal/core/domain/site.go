package domain

import (
	"strings"
	"time"
)

// Default site values target the Claude Code documentation.
// All of them can be overridden via the config file.
const (
	DefaultBaseURL    = "https://docs.anthropic.com"
	DefaultIndexPath  = "/en/docs/claude-code/overview"
	DefaultPathPrefix = "/en/docs/claude-code/"
	DefaultDocSuffix  = ".md"

	// DefaultFetchTimeout bounds every individual HTTP request.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultMaxDocBytes is the payload size ceiling (5 MiB).
	// Anything larger is treated as a failed fetch.
	DefaultMaxDocBytes = 5 * 1024 * 1024
)

// Site describes the remote documentation site being mirrored.
type Site struct {
	// BaseURL is the scheme and host of the site, without trailing slash.
	BaseURL string

	// IndexPath is the path of the index document from which all
	// other document paths are discovered.
	IndexPath string

	// PathPrefix is the documentation-root prefix every valid
	// document path must begin with.
	PathPrefix string

	// DocSuffix is appended to a document path to form its fetch URL
	// and to its final path segment to form its local filename.
	DocSuffix string

	// FetchTimeout bounds each HTTP request.
	FetchTimeout time.Duration

	// MaxDocBytes is the per-document payload size ceiling.
	MaxDocBytes int64
}

// DefaultSite returns a Site populated with the built-in defaults.
func DefaultSite() Site {
	return Site{
		BaseURL:      DefaultBaseURL,
		IndexPath:    DefaultIndexPath,
		PathPrefix:   DefaultPathPrefix,
		DocSuffix:    DefaultDocSuffix,
		FetchTimeout: DefaultFetchTimeout,
		MaxDocBytes:  DefaultMaxDocBytes,
	}
}

// IndexURL returns the absolute URL of the index document.
func (s Site) IndexURL() string {
	return s.BaseURL + s.IndexPath
}

// DocumentURL returns the absolute fetch URL for a document path.
// The document suffix is appended; the site serves plain markdown there.
func (s Site) DocumentURL(path string) string {
	return s.BaseURL + path + s.DocSuffix
}

// Filename derives the local filename for a document path: the final
// path segment plus the document suffix. Paths differing only in
// directory collapse to the same filename; the last writer in sync
// order wins.
func (s Site) Filename(path string) string {
	segment := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		segment = path[i+1:]
	}
	return segment + s.DocSuffix
}
