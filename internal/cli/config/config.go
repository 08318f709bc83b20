package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const ConfigFileName = "authx.json"

// Environment represents an AuthX deployment the CLI can talk to.
type Environment struct {
	Name   string `json:"name"`
	APIURL string `json:"api_url"`
}

// Config represents the CLI configuration file.
type Config struct {
	Environments []Environment `json:"environments"`
}

// DefaultConfig returns a starter configuration with example environments.
func DefaultConfig() *Config {
	return &Config{
		Environments: []Environment{
			{
				Name:   "production",
				APIURL: "https://api.authx.dev/api/v1",
			},
			{
				Name:   "local",
				APIURL: "http://localhost:8080/api/v1",
			},
		},
	}
}

// FindConfigFile searches for authx.json in the current directory and
// parent directories.
func FindConfigFile() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := currentDir
	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found in %s or any parent directory", ConfigFileName, currentDir)
}

// Load reads the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadFromCurrentDir loads config from the current directory or parent directories.
func LoadFromCurrentDir() (*Config, error) {
	configPath, err := FindConfigFile()
	if err != nil {
		return nil, err
	}

	return Load(configPath)
}

// Save writes the configuration to a file.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetEnvironmentByName returns an environment by its name.
func (c *Config) GetEnvironmentByName(name string) (*Environment, error) {
	for _, env := range c.Environments {
		if env.Name == name {
			return &env, nil
		}
	}
	return nil, fmt.Errorf("environment '%s' not found in %s", name, ConfigFileName)
}

// GetDefaultEnvironment returns the first environment in the list.
func (c *Config) GetDefaultEnvironment() (*Environment, error) {
	if len(c.Environments) == 0 {
		return nil, fmt.Errorf("no environments configured in %s", ConfigFileName)
	}
	return &c.Environments[0], nil
}

// Validate checks every environment has a name and a usable API URL.
func (c *Config) Validate() error {
	for _, env := range c.Environments {
		if env.Name == "" {
			return fmt.Errorf("environment with API URL '%s' has no name", env.APIURL)
		}
		if env.APIURL == "" {
			return fmt.Errorf("environment '%s' has no API URL", env.Name)
		}
		if !strings.HasPrefix(env.APIURL, "http://") && !strings.HasPrefix(env.APIURL, "https://") {
			return fmt.Errorf("environment '%s' has an invalid API URL: %s", env.Name, env.APIURL)
		}
	}
	return nil
}
