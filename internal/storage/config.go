package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacksmith/hitlist/internal/cli"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigEnv overrides the config file location.
	ConfigEnv = "HITLIST_CONFIG"

	// Default configuration values
	DefaultColor           = cli.ColorAuto
	DefaultLogLevel        = cli.DefaultLogLevel
	DefaultTempDirFallback = false
)

// Config represents the optional user configuration file.
// This file is user-managed and never written by hitlist.
type Config struct {
	// Color is auto, always or never.
	Color string `yaml:"color"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// TempDirFallback uses os.TempDir() when TEMP/TMPDIR is unset.
	TempDirFallback bool `yaml:"tmpdir_fallback"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Color:           DefaultColor,
		LogLevel:        DefaultLogLevel,
		TempDirFallback: DefaultTempDirFallback,
	}
}

// ConfigPath returns $HITLIST_CONFIG, or config.yaml under the user config
// directory. It returns "" when neither can be determined.
func ConfigPath(getenv func(string) string) string {
	if p := getenv(ConfigEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hitlist", "config.yaml")
}

// LoadConfig loads the config file at path if it exists, otherwise returns
// defaults. Partial files are merged with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	switch cfg.Color {
	case "", cli.ColorAuto, cli.ColorAlways, cli.ColorNever:
	default:
		return nil, fmt.Errorf("invalid color %q in %s: must be auto, always or never", cfg.Color, path)
	}
	if _, err := cli.ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("%w in %s", err, path)
	}

	return cfg, nil
}
