// Package config provides configuration loading and validation for the
// server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the server configuration. It can be loaded from a JSON
// file, from the environment, or both; explicit file values win over
// environment values.
type Config struct {
	// Port is the HTTP listen port.
	Port int `json:"port,omitempty"`
	// DatabaseURL selects the PostgreSQL backend; leave empty for the
	// in-memory store.
	DatabaseURL string `json:"database_url,omitempty"`
	// GeminiAPIKey enables resume extraction; leave empty to fill intake
	// drafts manually.
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	// SeedFixtures loads the demo dataset on startup.
	SeedFixtures bool `json:"seed_fixtures,omitempty"`
}

const defaultPort = 8080

// FromEnv builds a Config from environment variables.
func FromEnv() *Config {
	cfg := &Config{
		Port:         defaultPort,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	if seed := os.Getenv("SEED_FIXTURES"); seed != "" {
		cfg.SeedFixtures, _ = strconv.ParseBool(seed)
	}
	return cfg
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Merge overlays non-zero values from other onto c and returns c.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}
	if other.Port != 0 {
		c.Port = other.Port
	}
	if other.DatabaseURL != "" {
		c.DatabaseURL = other.DatabaseURL
	}
	if other.GeminiAPIKey != "" {
		c.GeminiAPIKey = other.GeminiAPIKey
	}
	if other.SeedFixtures {
		c.SeedFixtures = true
	}
	return c
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in (0, 65535], got %d", c.Port)
	}
	return nil
}
