// Package memory provides in-memory implementations of the storage
// ports, used by service tests.
package memory
