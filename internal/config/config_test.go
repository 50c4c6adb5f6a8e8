package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any ambient overrides (auto-restored after the test).
	for _, key := range []string{
		"DEALBOARD_DATA_DIR", "DEALBOARD_RATES_PATH", "DEALBOARD_SELECTORS_PATH",
		"DEALBOARD_FETCH_TIMEOUT", "DEALBOARD_MAX_RETRIES", "DEALBOARD_FETCH_RATE",
		"DEALBOARD_ALLOWED_DOMAINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.DataDir != "data" {
		t.Errorf("Expected default data dir, got %s", cfg.DataDir)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("Expected default 30s timeout, got %s", cfg.FetchTimeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("Expected default 3 retries, got %d", cfg.MaxRetries)
	}
	if cfg.FetchRate != 1 {
		t.Errorf("Expected default fetch rate 1, got %v", cfg.FetchRate)
	}
	if len(cfg.AllowedDomains) == 0 {
		t.Error("Expected a non-empty default domain allowlist")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DEALBOARD_DATA_DIR", "/tmp/feeds")
	t.Setenv("DEALBOARD_FETCH_TIMEOUT", "5s")
	t.Setenv("DEALBOARD_MAX_RETRIES", "1")
	t.Setenv("DEALBOARD_ALLOWED_DOMAINS", "a.example.com, b.example.com")

	cfg := Load()
	if cfg.DataDir != "/tmp/feeds" {
		t.Errorf("Expected /tmp/feeds, got %s", cfg.DataDir)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("Expected 5s, got %s", cfg.FetchTimeout)
	}
	if cfg.MaxRetries != 1 {
		t.Errorf("Expected 1, got %d", cfg.MaxRetries)
	}
	if len(cfg.AllowedDomains) != 2 || cfg.AllowedDomains[1] != "b.example.com" {
		t.Errorf("Expected two trimmed domains, got %v", cfg.AllowedDomains)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DEALBOARD_FETCH_TIMEOUT", "not-a-duration")
	t.Setenv("DEALBOARD_MAX_RETRIES", "many")
	t.Setenv("DEALBOARD_FETCH_RATE", "fast")

	cfg := Load()
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("Invalid duration should fall back to 30s, got %s", cfg.FetchTimeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("Invalid int should fall back to 3, got %d", cfg.MaxRetries)
	}
	if cfg.FetchRate != 1 {
		t.Errorf("Invalid float should fall back to 1, got %v", cfg.FetchRate)
	}
}
