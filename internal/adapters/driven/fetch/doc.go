// Package fetch implements the driven.Fetcher port over plain HTTPS
// GET. Downloads are bounded by the site's fetch timeout, paced by a
// proactive rate limiter and staged into the run's scratch workspace
// before any comparison against the target store.
package fetch
