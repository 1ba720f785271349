package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kwesthuizen/trackdeck/internal/config"
	"github.com/kwesthuizen/trackdeck/internal/model"
	"github.com/kwesthuizen/trackdeck/internal/store"
	"github.com/kwesthuizen/trackdeck/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	projectName := "My project"
	clientName := ""
	launchStr := ""
	budgetStr := ""
	seedDefaults := !documentExists()

	currency := cfg.General.Currency
	themeName := cfg.Appearance.Theme
	snapshots := cfg.Snapshots.Enabled

	themeOptions := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOptions = append(themeOptions, huh.NewOption(t.Name, t.Name))
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("Currency symbol").
				Description("Prefixed to every amount.").
				Value(&currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&themeName),
			huh.NewConfirm().
				Title("Record snapshots?").
				Description("Keeps a revision history of every save.").
				Value(&snapshots),
		),
	}

	if seedDefaults {
		groups = append([]*huh.Group{
			huh.NewGroup(
				huh.NewInput().
					Title("Project name").
					Value(&projectName),
				huh.NewInput().
					Title("Client name").
					Value(&clientName),
				huh.NewInput().
					Title("Launch date (YYYY-MM-DD)").
					Placeholder("leave blank to decide later").
					Value(&launchStr),
				huh.NewInput().
					Title("Total budget").
					Placeholder("e.g. 50000").
					Value(&budgetStr).
					Validate(func(s string) error {
						if s == "" {
							return nil
						}
						if _, err := strconv.Atoi(s); err != nil {
							return fmt.Errorf("must be a whole number")
						}
						return nil
					}),
			),
		}, groups...)
	}

	if err := huh.NewForm(groups...).Run(); err != nil {
		return err
	}

	if currency != "" {
		cfg.General.Currency = currency
	}
	cfg.Appearance.Theme = themeName
	cfg.Snapshots.Enabled = snapshots

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	if seedDefaults {
		if err := seedDocument(projectName, clientName, launchStr, budgetStr); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `trackdeck setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func documentExists() bool {
	_, err := os.Stat(dataPath())
	return err == nil
}

// seedDocument writes a fresh document pre-filled with the standard task plan,
// customized with whatever the wizard collected.
func seedDocument(name, client, launch, budget string) error {
	doc := store.Defaults()

	if name != "" {
		doc.Project.Name = name
	}
	doc.Project.Client = client

	if launch != "" {
		d, err := model.ParseDate(launch)
		if err != nil {
			return fmt.Errorf("bad launch date: %w", err)
		}
		doc.Project.LaunchDate = d
	}
	if budget != "" {
		n, err := strconv.Atoi(budget)
		if err == nil {
			doc.Finances.BudgetTotal = n
		}
	}

	if err := store.Save(dataPath(), doc); err != nil {
		return err
	}

	fmt.Printf("  Created %s with the standard %d-week plan (%d tasks)\n",
		dataPath(), model.TotalWeeks, len(doc.Tasks))
	return nil
}
