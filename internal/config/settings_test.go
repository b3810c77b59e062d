package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", filepath.Join(t.TempDir(), "home"))
	t.Setenv(EnvServerURL, "")
	t.Setenv(EnvServerURLFallback, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerBaseURL() != "http://127.0.0.1:8787" {
		t.Fatalf("unexpected base url: %q", cfg.ServerBaseURL())
	}
	if cfg.SearchDebounce() != 350*time.Millisecond {
		t.Fatalf("unexpected debounce: %v", cfg.SearchDebounce())
	}
	if cfg.SearchMinLength() != 2 {
		t.Fatalf("unexpected min length: %d", cfg.SearchMinLength())
	}
	if cfg.LogLevel() != "info" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel())
	}
}

func TestServerBaseURLEnvOrder(t *testing.T) {
	cfg := Default()
	cfg.Server.URL = "http://config:3000/"

	t.Setenv(EnvServerURL, "http://primary:8000/")
	t.Setenv(EnvServerURLFallback, "http://fallback:9000")
	if got := cfg.ServerBaseURL(); got != "http://primary:8000" {
		t.Fatalf("primary should win: %q", got)
	}

	t.Setenv(EnvServerURL, "")
	if got := cfg.ServerBaseURL(); got != "http://fallback:9000" {
		t.Fatalf("fallback should win: %q", got)
	}

	t.Setenv(EnvServerURLFallback, "   ")
	if got := cfg.ServerBaseURL(); got != "http://config:3000" {
		t.Fatalf("config file should win: %q", got)
	}
}

func TestLoadFromTOML(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)
	t.Setenv(EnvServerURL, "")
	t.Setenv(EnvServerURLFallback, "")

	dataDir := filepath.Join(home, ".noted")
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	content := []byte("[server]\nurl = \"http://127.0.0.1:9999/\"\n\n[search]\ndebounce_ms = 100\nmin_length = 3\n")
	if err := os.WriteFile(filepath.Join(dataDir, "config.toml"), content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerBaseURL() != "http://127.0.0.1:9999" {
		t.Fatalf("unexpected base url: %q", cfg.ServerBaseURL())
	}
	if cfg.SearchDebounce() != 100*time.Millisecond {
		t.Fatalf("unexpected debounce: %v", cfg.SearchDebounce())
	}
	if cfg.SearchMinLength() != 3 {
		t.Fatalf("unexpected min length: %d", cfg.SearchMinLength())
	}
}
