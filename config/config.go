// Package config provides configuration loading for the arshin CLI. The
// core library never consults it; a catalog set is an application-boundary
// concern.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config selects the unit catalogs the CLI works with.
type Config struct {
	// Catalogs lists catalog file patterns (doublestar syntax) merged into
	// one registry. Empty means the bundled default catalog.
	Catalogs []string `yaml:"catalogs"`

	// LogLevel controls CLI logging (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Catalogs: nil,
		LogLevel: "info",
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("log_level must be one of debug, info, warn, error")
}

// LoadFromFile loads configuration from a YAML file, layered over the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Merge merges another config into this one; other takes precedence for
// non-zero values.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if len(other.Catalogs) > 0 {
		c.Catalogs = other.Catalogs
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}
