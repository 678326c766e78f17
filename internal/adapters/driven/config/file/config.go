package file

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/docmirror/docmirror-cli/internal/core/domain"
)

// Config is the on-disk configuration, stored as TOML in the
// docmirror config directory (~/.docmirror/config.toml by default).
type Config struct {
	Site   SiteConfig   `toml:"site"`
	Layout LayoutConfig `toml:"layout"`
	Fetch  FetchConfig  `toml:"fetch"`
}

// SiteConfig overrides the remote site defaults.
type SiteConfig struct {
	BaseURL        string `toml:"base_url"`
	IndexPath      string `toml:"index_path"`
	PathPrefix     string `toml:"path_prefix"`
	DocSuffix      string `toml:"doc_suffix"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	MaxDocBytes    int64  `toml:"max_doc_bytes"`
}

// LayoutConfig sets the local directory layout.
type LayoutConfig struct {
	// TargetDir holds the mirrored documents, one flat file each.
	TargetDir string `toml:"target_dir"`

	// ReportsDir holds the timestamped per-run change reports.
	ReportsDir string `toml:"reports_dir"`

	// DataDir holds the run history database.
	DataDir string `toml:"data_dir"`
}

// FetchConfig tunes the HTTP client.
type FetchConfig struct {
	// RequestsPerSecond paces sequential document fetches.
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// Default returns a config populated with the built-in defaults.
// Directory defaults live under ~/.docmirror.
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}

	site := domain.DefaultSite()
	return &Config{
		Site: SiteConfig{
			BaseURL:        site.BaseURL,
			IndexPath:      site.IndexPath,
			PathPrefix:     site.PathPrefix,
			DocSuffix:      site.DocSuffix,
			TimeoutSeconds: int(site.FetchTimeout / time.Second),
			MaxDocBytes:    site.MaxDocBytes,
		},
		Layout: LayoutConfig{
			TargetDir:  filepath.Join(home, ".docmirror", "docs"),
			ReportsDir: filepath.Join(home, ".docmirror", "reports"),
			DataDir:    filepath.Join(home, ".docmirror", "data"),
		},
		Fetch: FetchConfig{RequestsPerSecond: 0},
	}, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".docmirror", "config.toml"), nil
}

// Load reads configuration from path, overlaying values onto the
// defaults. If path is empty the default location is used; a missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// ToSite converts the configured site values to a domain.Site.
func (c *Config) ToSite() domain.Site {
	site := domain.DefaultSite()
	if c.Site.BaseURL != "" {
		site.BaseURL = c.Site.BaseURL
	}
	if c.Site.IndexPath != "" {
		site.IndexPath = c.Site.IndexPath
	}
	if c.Site.PathPrefix != "" {
		site.PathPrefix = c.Site.PathPrefix
	}
	if c.Site.DocSuffix != "" {
		site.DocSuffix = c.Site.DocSuffix
	}
	if c.Site.TimeoutSeconds > 0 {
		site.FetchTimeout = time.Duration(c.Site.TimeoutSeconds) * time.Second
	}
	if c.Site.MaxDocBytes > 0 {
		site.MaxDocBytes = c.Site.MaxDocBytes
	}
	return site
}
