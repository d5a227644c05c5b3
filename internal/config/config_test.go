package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()
	if cfg.APIBaseURL == "" {
		t.Error("expected a default API base URL")
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("LINGUA_API_URL", "http://localhost:8080/v1")
	t.Setenv("LINGUA_API_TOKEN", "tok-123")
	t.Setenv("LINGUA_TIMEOUT", "3s")
	t.Setenv("LINGUA_DB", "/tmp/lingua-test.db")

	cfg := FromEnv()
	if cfg.APIBaseURL != "http://localhost:8080/v1" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.APIToken != "tok-123" {
		t.Errorf("APIToken = %q", cfg.APIToken)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Timeout)
	}
	if cfg.DBPath != "/tmp/lingua-test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
}

func TestFromEnv_BadTimeoutIgnored(t *testing.T) {
	t.Setenv("LINGUA_TIMEOUT", "soon")
	cfg := FromEnv()
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want default on parse failure", cfg.Timeout)
	}
}
