package cmd

import (
	"fmt"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/cli"
	"github.com/kwesthuizen/trackdeck/internal/report"

	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:     "notify",
	Aliases: []string{"alerts"},
	Short:   "Things that need attention",
	RunE:    runNotify,
}

func init() {
	rootCmd.AddCommand(notifyCmd)
}

func runNotify(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	notes := report.Notifications(doc, time.Now(), alertThresholds())

	fmt.Println()
	if len(notes) == 0 {
		fmt.Println("  All clear. Nothing needs attention.")
		fmt.Println()
		return nil
	}

	for _, n := range notes {
		style := cli.SeverityStyle(n.Severity)
		fmt.Printf("  %s %s\n", style.Render(n.Title), n.Message)
	}
	fmt.Println()

	return nil
}
