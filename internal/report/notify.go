package report

import (
	"fmt"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/model"
)

// Thresholds tune notification triggers.
type Thresholds struct {
	DueSoonDays    int     // tasks due within this many days
	BudgetWarnPct  float64 // budget utilization warning level, 0-1
	LaunchWarnDays int     // launch proximity warning window
}

// DefaultThresholds returns the stock trigger levels.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DueSoonDays:    3,
		BudgetWarnPct:  0.85,
		LaunchWarnDays: 7,
	}
}

// Notifications derives the active alerts for the document: overdue tasks,
// tasks due soon, budget utilization past the warning level, and launch
// proximity. Purely informational; the document is never touched.
func Notifications(doc *model.Document, now time.Time, th Thresholds) []model.Notification {
	var notes []model.Notification

	stats := TaskStats(doc.Tasks, now)
	if stats.Overdue > 0 {
		notes = append(notes, model.Notification{
			Severity: model.SeverityUrgent,
			Title:    fmt.Sprintf("%d Overdue %s", stats.Overdue, plural("Task", stats.Overdue)),
			Message:  fmt.Sprintf("You have %d %s past their deadline.", stats.Overdue, plural("task", stats.Overdue)),
			Target:   "tasks",
		})
	}

	dueSoon := 0
	for _, t := range doc.Tasks {
		if !IsOverdue(t, now) && DueWithin(t, now, th.DueSoonDays) {
			dueSoon++
		}
	}
	if dueSoon > 0 {
		notes = append(notes, model.Notification{
			Severity: model.SeverityWarning,
			Title:    fmt.Sprintf("%d %s Due Soon", dueSoon, plural("Task", dueSoon)),
			Message:  fmt.Sprintf("You have %d %s due within %d days.", dueSoon, plural("task", dueSoon), th.DueSoonDays),
			Target:   "tasks",
		})
	}

	if used := BudgetUtilization(doc.Finances); used > th.BudgetWarnPct {
		notes = append(notes, model.Notification{
			Severity: model.SeverityWarning,
			Title:    "Budget Alert",
			Message:  fmt.Sprintf("You've used %.1f%% of your budget. Consider reviewing expenses.", used*100),
			Target:   "finances",
		})
	}

	countdown := LaunchCountdown(doc.Project, now)
	if !countdown.Launched && countdown.DaysRemaining > 0 && countdown.DaysRemaining <= th.LaunchWarnDays {
		notes = append(notes, model.Notification{
			Severity: model.SeverityInfo,
			Title:    fmt.Sprintf("Launch in %d %s", countdown.DaysRemaining, plural("Day", countdown.DaysRemaining)),
			Message:  fmt.Sprintf("The project launches on %s. Time to finalize!", doc.Project.LaunchDate),
			Target:   "timeline",
		})
	}

	return notes
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
