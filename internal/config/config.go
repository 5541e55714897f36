package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds user settings loaded from ~/.tagtally/config.toml.
// Every field is optional; zero values fall back to defaults.
type Config struct {
	// DBPath points at the Timetagger SQLite database. When empty, the
	// database is auto-discovered (env vars and well-known paths).
	DBPath string `toml:"db_path"`

	// Timezone names the location used for period boundaries, e.g.
	// "Europe/Berlin". Empty means the system local time.
	Timezone string `toml:"timezone"`

	// DefaultGranularity is the period bucket used when no flag is given:
	// days, weeks or months.
	DefaultGranularity string `toml:"default_granularity"`

	// MaxTagDepth caps the tag hierarchy depth for the drill-down views.
	MaxTagDepth int `toml:"max_tag_depth"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultGranularity: "weeks",
		MaxTagDepth:        2,
	}
}

// DefaultPath returns ~/.tagtally/config.toml, or "" if the home directory
// cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tagtally", "config.toml")
}

// Load reads the config file at path, falling back to DefaultPath when path
// is empty. A missing file is not an error: defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.MaxTagDepth < 1 {
		cfg.MaxTagDepth = Default().MaxTagDepth
	}
	return cfg, nil
}

// Location resolves the configured timezone. Empty means local time.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
