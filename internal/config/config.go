package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultModel is the Gemini model used when NAVIGATOR_MODEL is unset.
const DefaultModel = "gemini-2.5-flash"

// DefaultHomeURL is the page the viewport opens on start.
const DefaultHomeURL = "https://www.google.com/webhp?igu=1"

// Config holds the process-wide settings read once from the environment.
// It is immutable after Load returns.
type Config struct {
	// APIKey and GeminiAPIKey are the host-level credential. API_KEY wins
	// when both are set.
	APIKey       string `envconfig:"API_KEY"`
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`

	Model        string        `envconfig:"NAVIGATOR_MODEL" default:"gemini-2.5-flash"`
	DataDir      string        `envconfig:"NAVIGATOR_DATA_DIR"`
	HomeURL      string        `envconfig:"NAVIGATOR_HOME_URL" default:"https://www.google.com/webhp?igu=1"`
	FetchTimeout time.Duration `envconfig:"NAVIGATOR_FETCH_TIMEOUT" default:"20s"`
	Notify       bool          `envconfig:"NAVIGATOR_NOTIFY" default:"false"`
}

// dataDir returns the default data directory (~/.navigator).
func dataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".navigator"), nil
}

// Load reads the environment, fills defaults and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DataDir == "" {
		dir, err := dataDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data directory: %w", err)
		}
		cfg.DataDir = dir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a config with no credential, rooted at dir.
func Default(dir string) *Config {
	return &Config{
		Model:        DefaultModel,
		DataDir:      dir,
		HomeURL:      DefaultHomeURL,
		FetchTimeout: 20 * time.Second,
	}
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("model must not be empty")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %s", c.FetchTimeout)
	}
	u, err := url.Parse(c.HomeURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid home URL %q", c.HomeURL)
	}
	return nil
}

// EnvCredential returns the environment-provided API key, or "".
func (c *Config) EnvCredential() string {
	if k := strings.TrimSpace(c.APIKey); k != "" {
		return k
	}
	return strings.TrimSpace(c.GeminiAPIKey)
}

// DBPath is the location of the persistent store.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "navigator.db")
}

// LogPath is the location of the debug log.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "navigator.log")
}
