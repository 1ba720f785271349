package cmd

import (
	"fmt"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/cli"
	"github.com/kwesthuizen/trackdeck/internal/report"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Project dashboard: progress, money, and launch countdown",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	now := time.Now()
	stats := report.TaskStats(doc.Tasks, now)
	fin := report.FinancialSummary(doc.Finances)
	countdown := report.LaunchCountdown(doc.Project, now)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  ·  Week %d", doc.Project.Name, doc.Project.CurrentWeek)))
	fmt.Println()

	launchStr := fmt.Sprintf("%d days (%s)", countdown.DaysRemaining, cli.FormatDate(doc.Project.LaunchDate))
	if countdown.Launched {
		launchStr = "launched!"
	}

	rows := [][]string{
		{"Client", doc.Project.Client},
		{"Status", string(doc.Project.Status)},
		{"Launch", launchStr},
		{"---"},
		{"Tasks done", fmt.Sprintf("%d / %d", stats.Completed, stats.Total)},
		{"Open", cli.FormatNumber(int64(stats.Pending))},
		{"Critical open", cli.FormatNumber(int64(stats.Critical))},
		{"Overdue", cli.FormatNumber(int64(stats.Overdue))},
		{"---"},
		{"Received", cli.FormatCurrency(fin.Received)},
		{"Awaiting", cli.FormatCurrency(fin.PendingIn)},
		{"Paid out", cli.FormatCurrency(fin.PaidOut)},
		{"Profit", cli.FormatCurrency(fin.Profit)},
		{"Balance", cli.FormatCurrency(fin.Balance)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  Progress  %s\n", cli.RenderProgressBar(stats.Progress(), 40))
	fmt.Printf("  Budget    %s\n", cli.RenderProgressBar(report.BudgetUtilization(doc.Finances), 40))

	notes := report.Notifications(doc, now, alertThresholds())
	if len(notes) > 0 {
		fmt.Println()
		for _, n := range notes {
			style := cli.SeverityStyle(n.Severity)
			fmt.Printf("  %s %s\n", style.Render(n.Title), n.Message)
		}
	}
	fmt.Println()

	return nil
}
