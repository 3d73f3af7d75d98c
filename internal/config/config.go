// Package config loads the server configuration.
//
// Values come from, in increasing priority: built-in defaults, an optional
// TOML file named by BUNDLE_MCP_CONFIG, and individual environment variables.
//
// Example file:
//
//	log_level = "debug"
//	filter = "catmullrom"
//	max_bundles = 64
//	max_dimension = 4096
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Environment variables read by Load.
const (
	EnvConfigFile   = "BUNDLE_MCP_CONFIG"
	EnvLogLevel     = "BUNDLE_MCP_LOG_LEVEL"
	EnvFilter       = "BUNDLE_MCP_FILTER"
	EnvMaxBundles   = "BUNDLE_MCP_MAX_BUNDLES"
	EnvMaxDimension = "BUNDLE_MCP_MAX_DIMENSION"
)

// DefaultMaxDimension is the largest width or height a client may request
// unless the configuration says otherwise.
const DefaultMaxDimension = 8192

// Config holds server settings.
type Config struct {
	// LogLevel is "info" or "debug".
	LogLevel string `toml:"log_level"`

	// Filter names the resample filter used for every bundle. Empty selects
	// the imaging package default.
	Filter string `toml:"filter"`

	// MaxBundles caps the number of registered bundle handles. Zero means
	// no limit.
	MaxBundles int `toml:"max_bundles"`

	// MaxDimension caps the width and height of a requested bitmap.
	MaxDimension int `toml:"max_dimension"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{LogLevel: "info", MaxDimension: DefaultMaxDimension}
}

// Load builds the configuration from the config file and environment.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Default()

	if path := getenv(EnvConfigFile); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvFilter); v != "" {
		cfg.Filter = v
	}
	if v := getenv(EnvMaxBundles); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvMaxBundles, err)
		}
		cfg.MaxBundles = n
	}
	if v := getenv(EnvMaxDimension); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvMaxDimension, err)
		}
		cfg.MaxDimension = n
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges. Filter names are checked by the server,
// which owns the filter registry.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "info", "debug":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	if c.MaxBundles < 0 {
		return fmt.Errorf("max_bundles must not be negative: %d", c.MaxBundles)
	}
	if c.MaxDimension <= 0 || c.MaxDimension > math.MaxInt32 {
		return fmt.Errorf("max_dimension out of range: %d", c.MaxDimension)
	}
	return nil
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}
