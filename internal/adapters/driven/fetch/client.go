package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/time/rate"

	"github.com/docmirror/docmirror-cli/internal/core/domain"
	"github.com/docmirror/docmirror-cli/internal/core/ports/driven"
	"github.com/docmirror/docmirror-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Fetcher = (*Client)(nil)

// DefaultRequestsPerSecond is the proactive throttle rate. The run is
// sequential anyway; this just keeps request spacing polite.
const DefaultRequestsPerSecond = 4.0

// Client fetches documents from the documentation site.
type Client struct {
	site       domain.Site
	scratchDir string
	http       *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a fetch client staging downloads under scratchDir.
func NewClient(site domain.Site, scratchDir string, requestsPerSecond float64) *Client {
	if requestsPerSecond <= 0 {
		requestsPerSecond = DefaultRequestsPerSecond
	}
	return &Client{
		site:       site,
		scratchDir: scratchDir,
		http:       &http.Client{Timeout: site.FetchTimeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// Preflight verifies the fetch capability is ready: the base URL must
// be a well-formed HTTPS URL and the index URL must be reachable.
// Runs before any discovery or document fetch; failure is fatal.
func (c *Client) Preflight(ctx context.Context) error {
	u, err := url.Parse(c.site.BaseURL)
	if err != nil {
		return fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("%w: base URL %q is not https", domain.ErrInsecureTransport, c.site.BaseURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.site.IndexURL(), nil)
	if err != nil {
		return fmt.Errorf("build preflight request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("index unreachable: %w", err)
	}
	defer resp.Body.Close()

	// Some servers reject HEAD; any response at all proves the index
	// host is reachable over HTTPS.
	logger.Debug("Preflight: %s responded %s", c.site.IndexURL(), resp.Status)
	return nil
}

// FetchIndex downloads the index document.
func (c *Client) FetchIndex(ctx context.Context) ([]byte, error) {
	body, status, err := c.get(ctx, c.site.IndexURL())
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("unexpected status %d from %s", status, c.site.IndexURL())
	}
	return body, nil
}

// FetchDocument downloads one document into the scratch workspace and
// applies the payload gates in order: transport, empty, oversize.
// A payload that does not begin with a markdown heading is accepted
// with a warning.
func (c *Client) FetchDocument(ctx context.Context, path string) (*domain.FetchResult, error) {
	docURL := c.site.DocumentURL(path)
	filename := c.site.Filename(path)

	body, status, err := c.get(ctx, docURL)
	if err != nil {
		return nil, &domain.FetchError{Path: path, Category: domain.FailureTransport, Err: err}
	}
	if status < 200 || status > 299 {
		return nil, &domain.FetchError{
			Path:     path,
			Category: domain.FailureTransport,
			Err:      fmt.Errorf("unexpected status %d from %s", status, docURL),
		}
	}

	// Stage first: the scratch copy exists even for gated payloads,
	// which makes failed downloads inspectable with --keep-temp.
	scratchPath := filepath.Join(c.scratchDir, filename)
	if err := os.WriteFile(scratchPath, body, 0600); err != nil {
		return nil, &domain.FetchError{Path: path, Category: domain.FailureTransport, Err: fmt.Errorf("stage download: %w", err)}
	}

	if len(body) == 0 {
		return nil, &domain.FetchError{Path: path, Category: domain.FailureEmpty}
	}
	if int64(len(body)) > c.site.MaxDocBytes {
		return nil, &domain.FetchError{Path: path, Category: domain.FailureOversize}
	}

	if !strings.HasPrefix(firstLine(body), "#") {
		logger.Warn("Document %s does not start with a markdown heading", filename)
	}

	return &domain.FetchResult{
		Path:        path,
		Filename:    filename,
		ScratchPath: scratchPath,
		Content:     body,
		Size:        int64(len(body)),
	}, nil
}

// get performs one bounded GET and returns the body and status code.
// A transport-level failure (network error) returns a non-nil error;
// non-2xx statuses are returned to the caller to classify.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	// Read at most one byte past the ceiling so oversize detection
	// never buffers an unbounded response.
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.site.MaxDocBytes+1))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	return body, resp.StatusCode, nil
}

// firstLine returns the first line of a payload.
func firstLine(body []byte) string {
	s := string(body)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
