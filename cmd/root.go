// Package cmd implements the trackdeck CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kwesthuizen/trackdeck/internal/cli"
	"github.com/kwesthuizen/trackdeck/internal/config"
	"github.com/kwesthuizen/trackdeck/internal/model"
	"github.com/kwesthuizen/trackdeck/internal/report"
	"github.com/kwesthuizen/trackdeck/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataFile string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "trackdeck",
	Short: "Project tracking dashboard CLI",
	Long:  "Track your project build: tasks, money, timeline, and launch countdown.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataFile, "data", "d", "", "Project data file (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// dataPath resolves the document path: flag beats config beats XDG default.
func dataPath() string {
	if flagDataFile != "" {
		return flagDataFile
	}
	cfg, _ := config.Load()
	if cfg.General.DataFile != "" {
		return cfg.General.DataFile
	}
	return store.DefaultPath()
}

// loadDocument is the shared load path used by all commands. It also applies
// the configured currency symbol so every command renders amounts the same way.
func loadDocument() (*model.Document, error) {
	cfg, _ := config.Load()
	cli.SetCurrency(cfg.General.Currency)

	doc, err := store.Load(dataPath())
	if err != nil {
		var perr *store.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("%s is not valid project data: %w\nfix the file by hand or restore a snapshot with `trackdeck snapshot list`", perr.Path, perr.Err)
		}
		return nil, err
	}
	return doc, nil
}

// saveDocument persists the document and records a revision snapshot when
// snapshots are enabled. Snapshot failures don't fail the save.
func saveDocument(doc *model.Document) error {
	path := dataPath()
	if err := store.Save(path, doc); err != nil {
		return err
	}

	cfg, _ := config.Load()
	if !cfg.Snapshots.Enabled {
		return nil
	}

	snaps, err := store.OpenSnapshots(filepath.Join(filepath.Dir(path), store.SnapshotFileName))
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  snapshot archive unavailable: %v\n", err)
		}
		return nil
	}
	defer func() { _ = snaps.Close() }()

	if _, err := snaps.Record(doc); err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  could not record snapshot: %v\n", err)
		}
		return nil
	}
	if cfg.Snapshots.Keep > 0 {
		_ = snaps.Prune(cfg.Snapshots.Keep)
	}
	return nil
}

// alertThresholds maps configured alert settings onto report thresholds.
func alertThresholds() report.Thresholds {
	cfg, _ := config.Load()
	th := report.DefaultThresholds()
	if cfg.Alerts.DueSoonDays > 0 {
		th.DueSoonDays = cfg.Alerts.DueSoonDays
	}
	if cfg.Alerts.BudgetWarnPercent > 0 {
		th.BudgetWarnPct = float64(cfg.Alerts.BudgetWarnPercent) / 100
	}
	if cfg.Alerts.LaunchWarnDays > 0 {
		th.LaunchWarnDays = cfg.Alerts.LaunchWarnDays
	}
	return th
}
