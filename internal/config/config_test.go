package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
	if Exists() {
		t.Fatal("Exists() true with no file on disk")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "$"
	cfg.General.DataFile = "/tmp/elsewhere.json"
	cfg.Alerts.DueSoonDays = 5
	cfg.Appearance.Theme = "terminal"
	cfg.Snapshots.Keep = 10

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() false after save")
	}

	back, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if back != cfg {
		t.Fatalf("round trip changed the config:\n got %+v\nwant %+v", back, cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "trackdeck")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	partial := "[general]\ncurrency = \"€\"\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(partial), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Currency != "€" {
		t.Errorf("currency = %q, want €", cfg.General.Currency)
	}
	// Unset sections fall back to the defaults.
	if cfg.Alerts.DueSoonDays != 3 || cfg.Snapshots.Keep != 50 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "trackdeck")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("not [toml"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("malformed config accepted")
	}
}
