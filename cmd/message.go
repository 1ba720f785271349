package cmd

import (
	"fmt"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/report"

	"github.com/spf13/cobra"
)

var messageCmd = &cobra.Command{
	Use:   "message",
	Short: "Generate ready-to-send project updates",
}

var messageWeeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Client update for the current week",
	RunE:  runMessageWeekly,
}

var messageCheckinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Monday check-in for the build team",
	RunE:  runMessageCheckin,
}

var messageTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Saved message templates",
	RunE:  runMessageTemplates,
}

func init() {
	messageCmd.AddCommand(messageWeeklyCmd)
	messageCmd.AddCommand(messageCheckinCmd)
	messageCmd.AddCommand(messageTemplatesCmd)
	rootCmd.AddCommand(messageCmd)
}

func runMessageWeekly(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(report.WeeklyUpdate(doc, time.Now()))
	fmt.Println()
	return nil
}

func runMessageCheckin(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(report.CheckinMessage(doc, time.Now()))
	fmt.Println()
	return nil
}

func runMessageTemplates(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	if len(doc.Communications) == 0 {
		fmt.Println("\n  No saved templates.")
		return nil
	}

	for _, c := range doc.Communications {
		fmt.Printf("\n  %s (for %s)\n", c.Name, c.Audience)
		fmt.Printf("  %s\n", c.Body)
	}
	fmt.Println()
	return nil
}
