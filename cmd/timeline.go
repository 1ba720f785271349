package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/cli"
	"github.com/kwesthuizen/trackdeck/internal/model"
	"github.com/kwesthuizen/trackdeck/internal/report"

	"github.com/spf13/cobra"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Week-by-week progress toward launch",
	RunE:  runTimeline,
}

var timelineWeekCmd = &cobra.Command{
	Use:   "week <n>",
	Short: "Set the current week",
	Args:  cobra.ExactArgs(1),
	RunE:  runTimelineWeek,
}

func init() {
	timelineCmd.AddCommand(timelineWeekCmd)
	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	now := time.Now()
	weeks := report.Timeline(doc)
	countdown := report.LaunchCountdown(doc.Project, now)

	fmt.Println()
	fmt.Println(cli.RenderTitle("TIMELINE"))
	fmt.Println()

	for _, w := range weeks {
		marker := " "
		if w.Current {
			marker = ">"
		}
		pct := 0.0
		if w.Total > 0 {
			pct = float64(w.Completed) / float64(w.Total)
		}
		fmt.Printf("  %s Week %d  %s  %d/%d\n", marker, w.Week, cli.RenderProgressBar(pct, 30), w.Completed, w.Total)
	}

	fmt.Println()
	if countdown.Launched {
		fmt.Println("  Launched!")
	} else {
		fmt.Printf("  %d days to launch (%s)\n", countdown.DaysRemaining, cli.FormatDate(doc.Project.LaunchDate))
	}
	fmt.Println()

	return nil
}

func runTimelineWeek(_ *cobra.Command, args []string) error {
	week, err := strconv.Atoi(args[0])
	if err != nil || week < 1 || week > model.TotalWeeks {
		return fmt.Errorf("week must be 1-%d, got %q", model.TotalWeeks, args[0])
	}

	doc, err := loadDocument()
	if err != nil {
		return err
	}

	doc.Project.CurrentWeek = week
	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Printf("  Now on week %d\n", week)
	return nil
}
