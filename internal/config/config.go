// Package config loads and saves trackdeck configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all trackdeck configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Alerts     AlertsConfig     `toml:"alerts"`
	Appearance AppearanceConfig `toml:"appearance"`
	Snapshots  SnapshotsConfig  `toml:"snapshots"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataFile string `toml:"data_file,omitempty"` // document path; empty means the XDG default
	Currency string `toml:"currency"`            // display symbol, e.g. "R"
}

// AlertsConfig tunes notification thresholds.
type AlertsConfig struct {
	DueSoonDays       int `toml:"due_soon_days"`
	BudgetWarnPercent int `toml:"budget_warn_percent"`
	LaunchWarnDays    int `toml:"launch_warn_days"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// SnapshotsConfig controls the revision archive.
type SnapshotsConfig struct {
	Enabled bool `toml:"enabled"`
	Keep    int  `toml:"keep"` // revisions retained, oldest pruned first
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency: "R",
		},
		Alerts: AlertsConfig{
			DueSoonDays:       3,
			BudgetWarnPercent: 85,
			LaunchWarnDays:    7,
		},
		Appearance: AppearanceConfig{
			Theme: "jewel-dark",
		},
		Snapshots: SnapshotsConfig{
			Enabled: true,
			Keep:    50,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "trackdeck")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "trackdeck")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
