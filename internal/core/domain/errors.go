package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDependency indicates the preflight check failed: the fetch
	// capability is missing or the index URL is unreachable.
	// Fatal before any discovery or document fetch begins.
	ErrDependency = errors.New("dependency check failed")

	// ErrDiscovery indicates discovery could not produce a usable set
	// of document paths: the index fetch failed, extraction yielded
	// zero matches, or zero candidates survived validation.
	// Fatal before any document fetch begins.
	ErrDiscovery = errors.New("discovery failed")

	// ErrInsecureTransport indicates the configured base URL does not
	// use HTTPS. Mirroring over plain HTTP is refused.
	ErrInsecureTransport = errors.New("insecure transport")
)

// FailureCategory classifies a per-document fetch failure.
type FailureCategory string

const (
	// FailureTransport covers network errors and non-2xx responses.
	FailureTransport FailureCategory = "transport"

	// FailureEmpty covers zero-byte payloads.
	FailureEmpty FailureCategory = "empty"

	// FailureOversize covers payloads exceeding the size ceiling.
	FailureOversize FailureCategory = "oversize"
)

// FetchError is a per-document fetch failure. It is non-fatal: the
// sync engine records a FAILED outcome and continues with the next
// document.
type FetchError struct {
	// Path is the document path whose fetch failed.
	Path string

	// Category classifies the failure.
	Category FailureCategory

	// Err is the underlying diagnostic, nil for empty/oversize.
	Err error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.Path, e.Category, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s payload", e.Path, e.Category)
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError checks whether err is a per-document fetch failure.
// Returns the FetchError and true if it is, nil and false otherwise.
func IsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
