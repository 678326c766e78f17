package fetch

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmirror/docmirror-cli/internal/core/domain"
)

// newTestSite points a default site at the test server.
func newTestSite(serverURL string) domain.Site {
	site := domain.DefaultSite()
	site.BaseURL = serverURL
	return site
}

func TestClient_FetchDocument(t *testing.T) {
	payload := "# Overview\n\nWelcome to the docs.\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/en/docs/claude-code/overview.md", r.URL.Path)
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	scratch := t.TempDir()
	client := NewClient(newTestSite(server.URL), scratch, 0)

	result, err := client.FetchDocument(context.Background(), "/en/docs/claude-code/overview")

	require.NoError(t, err)
	assert.Equal(t, "overview.md", result.Filename)
	assert.Equal(t, []byte(payload), result.Content)
	assert.Equal(t, int64(len(payload)), result.Size)

	// The download was staged into the scratch workspace.
	assert.Equal(t, filepath.Join(scratch, "overview.md"), result.ScratchPath)
	staged, err := os.ReadFile(result.ScratchPath)
	require.NoError(t, err)
	assert.Equal(t, []byte(payload), staged)
}

func TestClient_FetchDocument_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(newTestSite(server.URL), t.TempDir(), 0)

	_, err := client.FetchDocument(context.Background(), "/en/docs/claude-code/missing")

	fe, ok := domain.IsFetchError(err)
	require.True(t, ok, "expected a fetch error, got %v", err)
	assert.Equal(t, domain.FailureTransport, fe.Category)
	assert.Contains(t, fe.Error(), "404")
}

func TestClient_FetchDocument_EmptyPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(newTestSite(server.URL), t.TempDir(), 0)

	_, err := client.FetchDocument(context.Background(), "/en/docs/claude-code/empty")

	fe, ok := domain.IsFetchError(err)
	require.True(t, ok)
	assert.Equal(t, domain.FailureEmpty, fe.Category)
}

func TestClient_FetchDocument_Oversize(t *testing.T) {
	big := bytes.Repeat([]byte("x"), 64)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(big)
	}))
	defer server.Close()

	site := newTestSite(server.URL)
	site.MaxDocBytes = 32
	client := NewClient(site, t.TempDir(), 0)

	_, err := client.FetchDocument(context.Background(), "/en/docs/claude-code/huge")

	fe, ok := domain.IsFetchError(err)
	require.True(t, ok)
	assert.Equal(t, domain.FailureOversize, fe.Category)
}

func TestClient_FetchDocument_MissingHeadingIsAccepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("plain text, no heading\n"))
	}))
	defer server.Close()

	client := NewClient(newTestSite(server.URL), t.TempDir(), 0)

	// A missing leading heading is a warning, not a failure.
	result, err := client.FetchDocument(context.Background(), "/en/docs/claude-code/plain")

	require.NoError(t, err)
	assert.Equal(t, []byte("plain text, no heading\n"), result.Content)
}

func TestClient_FetchIndex(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/en/docs/claude-code/overview", r.URL.Path)
		_, _ = w.Write([]byte(`<a href="/en/docs/claude-code/overview">Overview</a>`))
	}))
	defer server.Close()

	client := NewClient(newTestSite(server.URL), t.TempDir(), 0)

	body, err := client.FetchIndex(context.Background())

	require.NoError(t, err)
	assert.Contains(t, string(body), "claude-code/overview")
}

func TestClient_FetchIndex_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(newTestSite(server.URL), t.TempDir(), 0)

	_, err := client.FetchIndex(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_Preflight_RejectsInsecureTransport(t *testing.T) {
	// httptest servers are plain HTTP, which preflight must refuse.
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	defer server.Close()

	client := NewClient(newTestSite(server.URL), t.TempDir(), 0)

	err := client.Preflight(context.Background())

	assert.ErrorIs(t, err, domain.ErrInsecureTransport)
}

func TestClient_Preflight_UnreachableIndex(t *testing.T) {
	site := domain.DefaultSite()
	// Reserved TEST-NET address: connection should fail fast.
	site.BaseURL = "https://192.0.2.1"
	site.FetchTimeout = 200 * time.Millisecond

	client := NewClient(site, t.TempDir(), 0)

	err := client.Preflight(context.Background())

	assert.Error(t, err)
}
