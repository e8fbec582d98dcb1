// Package config handles configuration loading and validation for pokedex.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/pokedex/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	API APIConfig `yaml:"api"`
	TUI TUIConfig `yaml:"tui"`
}

// APIConfig holds settings for the upstream read-only JSON API.
type APIConfig struct {
	// URL is the API base, without a trailing slash.
	URL string `yaml:"url"`
	// Limit caps how many catalog entries are requested at startup.
	Limit int `yaml:"limit"`
	// Timeout bounds each outbound request.
	Timeout time.Duration `yaml:"timeout"`
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			URL:     "https://pokeapi.co/api/v2",
			Limit:   151,
			Timeout: 10 * time.Second,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "pokedex", "config.yaml")
}

// DefaultLogPath returns the default log file location, next to the config.
func DefaultLogPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "pokedex.log"
	}
	return filepath.Join(dir, "pokedex", "pokedex.log")
}

// Load reads configuration from the given path. If the file doesn't exist,
// defaults are returned. Zero values in the file fall back to defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Write marshals the config to YAML at the given path, creating parent
// directories as needed.
func Write(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.API.URL == "" {
		c.API.URL = defaults.API.URL
	}
	if c.API.Limit == 0 {
		c.API.Limit = defaults.API.Limit
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = defaults.API.Timeout
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}
