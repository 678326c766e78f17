// Package sqlite implements the run history store on SQLite via the
// pure-Go modernc.org/sqlite driver. Schema changes ship as embedded
// SQL migrations applied at open time.
package sqlite
