// ============================================================================
// musterwerk - Design Pattern Tutor
// ============================================================================
//
// Package:     config
// Description: Optional TOML/YAML configuration for the tutor CLI
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that points at a config file
const EnvConfigPath = "MUSTERWERK_CONFIG"

// UnboundedPool mirrors the pool package's unbounded capacity value
const UnboundedPool = -1

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Menu    MenuConfig    `toml:"menu" yaml:"menu"`
	Pool    PoolConfig    `toml:"pool" yaml:"pool"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// MenuConfig holds settings for the interactive menu
type MenuConfig struct {
	Title       string `toml:"title" yaml:"title"`
	ClearScreen bool   `toml:"clear_screen" yaml:"clear_screen"`
	TUI         bool   `toml:"tui" yaml:"tui"`
}

// PoolConfig holds settings for the object pool demonstration
type PoolConfig struct {
	// Capacity limits the number of live objects; 0 or negative means unbounded
	Capacity int `toml:"capacity" yaml:"capacity"`
}

// Format represents a configuration file format
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch detectFormat(path) {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// LoadFromEnv loads configuration from MUSTERWERK_CONFIG or one of the
// default locations. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	defaultPaths := []string{
		"./configs/config.toml",
		"./config.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		defaultPaths = append(defaultPaths, filepath.Join(home, ".config/musterwerk/config.toml"))
	}

	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "musterwerk"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	if c.Menu.Title == "" {
		c.Menu.Title = "musterwerk - Design Patterns"
	}

	if c.Pool.Capacity <= 0 {
		c.Pool.Capacity = UnboundedPool
	}
}
