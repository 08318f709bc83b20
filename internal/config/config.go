package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when
// AUTHX_CONFIG_FILE is not set.
const DefaultConfigFile = "console.yaml"

// Config holds all configuration for the console server.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Server  ServerConfig  `yaml:"server"`
	Cookie  CookieConfig  `yaml:"cookie"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig describes the upstream AuthX identity API.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// ServerConfig holds HTTP listener settings for the console.
type ServerConfig struct {
	ListenAddr      string `yaml:"listen_addr"`
	DashboardOrigin string `yaml:"dashboard_origin"`
}

// CookieConfig controls the session cookie attributes.
type CookieConfig struct {
	Domain string `yaml:"domain"`
	// Secure is on by default; it can only be disabled explicitly
	// (COOKIE_INSECURE=true) for local development over plain HTTP.
	Insecure bool `yaml:"insecure"`
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, console
}

// Load builds the configuration from an optional YAML file layered with
// environment variables. Environment variables win.
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	cfg := &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080/api/v1",
		},
		Server: ServerConfig{
			ListenAddr:      ":3000",
			DashboardOrigin: "http://localhost:5173",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if err := loadFile(cfg); err != nil {
		return nil, err
	}

	if v := os.Getenv("AUTHX_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("DASHBOARD_ORIGIN"); v != "" {
		cfg.Server.DashboardOrigin = v
	}
	if v := os.Getenv("COOKIE_DOMAIN"); v != "" {
		cfg.Cookie.Domain = v
	}
	if os.Getenv("COOKIE_INSECURE") == "true" {
		cfg.Cookie.Insecure = true
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	return cfg, nil
}

// loadFile merges the optional YAML config file into cfg.
func loadFile(cfg *Config) error {
	path := os.Getenv("AUTHX_CONFIG_FILE")
	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}
