package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/docmirror/docmirror-cli/internal/core/domain"
	"github.com/docmirror/docmirror-cli/internal/core/ports/driven"
	"github.com/docmirror/docmirror-cli/internal/logger"
)

// Discoverer extracts the set of document paths to sync from the
// index document.
type Discoverer struct {
	fetcher   driven.Fetcher
	validator *Validator
	hrefs     *regexp.Regexp
}

// NewDiscoverer creates a discoverer for the given site.
func NewDiscoverer(site domain.Site, fetcher driven.Fetcher, validator *Validator) (*Discoverer, error) {
	// Anchor-href extraction over raw text. The site's pages only ever
	// need literal pattern matching, so no HTML parser is involved;
	// candidates are matched by prefix and cut at the closing quote.
	hrefs, err := regexp.Compile(`href=["']?(` + regexp.QuoteMeta(site.PathPrefix) + `[^"'\s>]*)`)
	if err != nil {
		return nil, fmt.Errorf("compile href pattern: %w", err)
	}

	return &Discoverer{
		fetcher:   fetcher,
		validator: validator,
		hrefs:     hrefs,
	}, nil
}

// Discover fetches the index document and returns the ordered set of
// valid document paths. The set is deduplicated and sorted
// lexicographically. Fails with domain.ErrDiscovery when the index
// fetch fails, extraction yields zero matches, or zero candidates
// survive validation.
func (d *Discoverer) Discover(ctx context.Context) ([]string, error) {
	body, err := d.fetcher.FetchIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch index: %w", domain.ErrDiscovery, err)
	}

	matches := d.hrefs.FindAllStringSubmatch(string(body), -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no document links found in index", domain.ErrDiscovery)
	}

	candidates := make([]string, 0, len(matches))
	for _, m := range matches {
		path := m[1]
		if strings.Contains(path, "#") {
			// Fragment-bearing hrefs are discarded whole, not
			// truncated at the marker.
			logger.Debug("Discarding fragment link: %s", path)
			continue
		}
		candidates = append(candidates, path)
	}

	// Dedupe via sort + unique; the resulting set order is
	// lexicographic, not site order.
	sort.Strings(candidates)
	candidates = unique(candidates)

	paths := make([]string, 0, len(candidates))
	for _, path := range candidates {
		if !d.validator.Validate(path) {
			logger.Warn("Skipping invalid path: %s", path)
			continue
		}
		paths = append(paths, path)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no valid document paths in index", domain.ErrDiscovery)
	}

	logger.Info("Discovered %d document paths", len(paths))
	return paths, nil
}

// unique removes adjacent duplicates from a sorted slice.
func unique(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
