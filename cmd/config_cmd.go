package cmd

import (
	"fmt"

	"github.com/kwesthuizen/trackdeck/internal/config"
	"github.com/kwesthuizen/trackdeck/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DataFile != "" {
		fmt.Printf("    Data file: %s\n", cfg.General.DataFile)
	} else {
		fmt.Printf("    Data file: %s (default)\n", store.DefaultPath())
	}
	fmt.Printf("    Currency:  %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Alerts]")
	fmt.Printf("    Due soon window:  %d days\n", cfg.Alerts.DueSoonDays)
	fmt.Printf("    Budget warning:   %d%%\n", cfg.Alerts.BudgetWarnPercent)
	fmt.Printf("    Launch warning:   %d days\n", cfg.Alerts.LaunchWarnDays)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Snapshots]")
	fmt.Printf("    Enabled: %v\n", cfg.Snapshots.Enabled)
	fmt.Printf("    Keep:    %d revisions\n", cfg.Snapshots.Keep)
	fmt.Println()

	fmt.Println("  Run `trackdeck setup` to reconfigure.")
	return nil
}
