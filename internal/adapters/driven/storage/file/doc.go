// Package file implements the flat-file storage adapters: the target
// document store, the per-run change report, and the scratch workspace
// for in-flight downloads.
package file
