// Package services implements the core docmirror logic: path
// validation, discovery, the differential sync engine and run
// summarisation. Services depend only on domain types and driven
// port interfaces.
package services
