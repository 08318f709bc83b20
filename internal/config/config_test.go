package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:8080/api/v1" {
		t.Errorf("api base url = %q, want default", cfg.API.BaseURL)
	}
	if cfg.Server.ListenAddr != ":3000" {
		t.Errorf("listen addr = %q, want :3000", cfg.Server.ListenAddr)
	}
	if cfg.Cookie.Insecure {
		t.Error("cookie must be secure by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("AUTHX_API_URL", "https://id.example.com/api/v1")
	t.Setenv("LISTEN_ADDR", ":4000")
	t.Setenv("COOKIE_DOMAIN", "console.example.com")
	t.Setenv("COOKIE_INSECURE", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "https://id.example.com/api/v1" {
		t.Errorf("api base url = %q, env override lost", cfg.API.BaseURL)
	}
	if cfg.Server.ListenAddr != ":4000" {
		t.Errorf("listen addr = %q, env override lost", cfg.Server.ListenAddr)
	}
	if cfg.Cookie.Domain != "console.example.com" {
		t.Errorf("cookie domain = %q, env override lost", cfg.Cookie.Domain)
	}
	if !cfg.Cookie.Insecure {
		t.Error("COOKIE_INSECURE=true should disable the secure flag")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, env override lost", cfg.Logging.Level)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "console.yaml")
	yaml := `
api:
  base_url: https://id.example.com/api/v1
server:
  listen_addr: ":8443"
cookie:
  domain: console.example.com
logging:
  level: warn
  format: console
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AUTHX_CONFIG_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "https://id.example.com/api/v1" {
		t.Errorf("api base url = %q, yaml value lost", cfg.API.BaseURL)
	}
	if cfg.Server.ListenAddr != ":8443" {
		t.Errorf("listen addr = %q, yaml value lost", cfg.Server.ListenAddr)
	}
	if cfg.Cookie.Domain != "console.example.com" {
		t.Errorf("cookie domain = %q, yaml value lost", cfg.Cookie.Domain)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level = %q, yaml value lost", cfg.Logging.Level)
	}

	// Dashboard origin was absent from the file, so the default survives.
	if cfg.Server.DashboardOrigin != "http://localhost:5173" {
		t.Errorf("dashboard origin = %q, default lost", cfg.Server.DashboardOrigin)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "console.yaml")
	if err := os.WriteFile(path, []byte("api:\n  base_url: https://from-file.example.com\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AUTHX_CONFIG_FILE", path)
	t.Setenv("AUTHX_API_URL", "https://from-env.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "https://from-env.example.com" {
		t.Errorf("api base url = %q, env should win over the file", cfg.API.BaseURL)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "console.yaml")
	if err := os.WriteFile(path, []byte("api: [not: valid"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AUTHX_CONFIG_FILE", path)

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

// clearConfigEnv isolates tests from ambient environment variables.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AUTHX_CONFIG_FILE", "AUTHX_API_URL", "LISTEN_ADDR", "DASHBOARD_ORIGIN",
		"COOKIE_DOMAIN", "COOKIE_INSECURE", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}
