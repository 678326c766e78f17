// Package driven defines the outbound port interfaces for docmirror.
//
// Driven ports are implemented by adapters (HTTP fetcher, file store,
// SQLite history) and consumed by the core services. Services depend
// on these interfaces, never on concrete adapters.
package driven
