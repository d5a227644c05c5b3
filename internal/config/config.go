// Package config resolves client configuration from the environment, with
// an optional .env file for development setups.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the client needs to reach the platform and keep
// its local journal.
type Config struct {
	// APIBaseURL is the platform API root, without a trailing slash.
	APIBaseURL string

	// APIToken is the bearer credential sent on every call. May be empty
	// for anonymous/preview endpoints.
	APIToken string

	// Timeout bounds a single API round trip. Default: 10s.
	Timeout time.Duration

	// DBPath overrides the journal database location.
	DBPath string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		APIBaseURL: "https://api.lingua.app/v1",
		Timeout:    10 * time.Second,
	}
}

// FromEnv builds a Config from LINGUA_* environment variables, falling back
// to defaults for unset values. A .env file in the working directory is
// loaded first if present; real environment variables win over it.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if u := os.Getenv("LINGUA_API_URL"); u != "" {
		cfg.APIBaseURL = u
	}
	if k := os.Getenv("LINGUA_API_TOKEN"); k != "" {
		cfg.APIToken = k
	}
	if t := os.Getenv("LINGUA_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if p := os.Getenv("LINGUA_DB"); p != "" {
		cfg.DBPath = p
	}

	return cfg
}

// DefaultDBPath resolves the journal file path in priority order:
// 1. the DBPath field (from LINGUA_DB or --db)
// 2. $XDG_DATA_HOME/lingua/lingua.db
// 3. ~/.local/share/lingua/lingua.db
func (c Config) DefaultDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, ensureDir(c.DBPath)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "lingua", "lingua.db")
	return p, ensureDir(p)
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
