package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	yaml := `
server:
  base_url: http://localhost:8000
  csrf_token: abc123
connections:
  reconnect_delay: 3s
  max_reconnect_attempts: 5
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.BaseURL != "http://localhost:8000" {
		t.Errorf("Server.BaseURL = %q, want %q", cfg.Server.BaseURL, "http://localhost:8000")
	}
	if cfg.Server.CSRFToken != "abc123" {
		t.Errorf("Server.CSRFToken = %q, want %q", cfg.Server.CSRFToken, "abc123")
	}
	if cfg.Connections.ReconnectDelay != 3*time.Second {
		t.Errorf("Connections.ReconnectDelay = %v, want %v", cfg.Connections.ReconnectDelay, 3*time.Second)
	}
	if cfg.Connections.MaxReconnectAttempts != 5 {
		t.Errorf("Connections.MaxReconnectAttempts = %d, want 5", cfg.Connections.MaxReconnectAttempts)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_CSRF_TOKEN", "secret123")

	yaml := `
server:
  base_url: http://localhost:8000
  csrf_token: ${TEST_CSRF_TOKEN}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.CSRFToken != "secret123" {
		t.Errorf("Server.CSRFToken = %q, want %q", cfg.Server.CSRFToken, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
server:
  base_url: http://localhost:8000
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Server.StatusPath != DefaultStatusPath {
		t.Errorf("Server.StatusPath = %q, want %q", cfg.Server.StatusPath, DefaultStatusPath)
	}
	if cfg.Server.CSRFCookie != DefaultCSRFCookie {
		t.Errorf("Server.CSRFCookie = %q, want %q", cfg.Server.CSRFCookie, DefaultCSRFCookie)
	}
	if cfg.Connections.ReconnectDelay != DefaultReconnectDelay {
		t.Errorf("Connections.ReconnectDelay = %v, want %v", cfg.Connections.ReconnectDelay, DefaultReconnectDelay)
	}
	if cfg.Connections.MaxReconnectAttempts != DefaultMaxReconnectAttempts {
		t.Errorf("Connections.MaxReconnectAttempts = %d, want %d",
			cfg.Connections.MaxReconnectAttempts, DefaultMaxReconnectAttempts)
	}
	if cfg.Notifications.TTL != DefaultNotificationTTL {
		t.Errorf("Notifications.TTL = %v, want %v", cfg.Notifications.TTL, DefaultNotificationTTL)
	}
	if cfg.Status.PollInterval != DefaultStatusPollInterval {
		t.Errorf("Status.PollInterval = %v, want %v", cfg.Status.PollInterval, DefaultStatusPollInterval)
	}
}

func TestLoadAndValidate(t *testing.T) {
	yaml := `
server:
  base_url: http://localhost:8000
`
	path := writeTempFile(t, yaml)

	if _, err := LoadAndValidate(path); err != nil {
		t.Fatalf("LoadAndValidate failed: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*DashboardConfig)
	}{
		{"missing base_url", func(c *DashboardConfig) { c.Server.BaseURL = "" }},
		{"bad base_url scheme", func(c *DashboardConfig) { c.Server.BaseURL = "ftp://host" }},
		{"relative status_path", func(c *DashboardConfig) { c.Server.StatusPath = "api/status" }},
		{"zero reconnect_delay", func(c *DashboardConfig) { c.Connections.ReconnectDelay = 0 }},
		{"zero reconnect ceiling", func(c *DashboardConfig) { c.Connections.MaxReconnectAttempts = 0 }},
		{"zero notification ttl", func(c *DashboardConfig) { c.Notifications.TTL = 0 }},
		{"zero poll interval", func(c *DashboardConfig) { c.Status.PollInterval = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &DashboardConfig{Server: ServerConfig{BaseURL: "http://localhost:8000"}}
			cfg.applyDefaults()
			tt.modify(cfg)

			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load with missing file should fail")
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
