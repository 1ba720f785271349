package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/model"
)

// WeeklyUpdate builds the copy-and-send client update for the current week:
// up to three completed items and up to three outstanding critical ones.
func WeeklyUpdate(doc *model.Document, now time.Time) string {
	week := doc.Project.CurrentWeek
	weekTasks := WeekTasks(doc.Tasks, week)

	var completed, pendingCritical []string
	for _, t := range weekTasks {
		switch {
		case t.Status == model.TaskCompleted:
			completed = append(completed, t.Description)
		case t.Priority == model.PriorityCritical:
			pendingCritical = append(pendingCritical, t.Description)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Week %d update for %s\n\n", week, doc.Project.Name)

	b.WriteString("Done:\n")
	if len(completed) == 0 {
		b.WriteString("- Building momentum on key tasks\n")
	}
	for _, desc := range cap3(completed) {
		fmt.Fprintf(&b, "- %s\n", desc)
	}

	b.WriteString("\nNext up:\n")
	if len(pendingCritical) == 0 {
		b.WriteString("- All on track!\n")
	}
	for _, desc := range cap3(pendingCritical) {
		fmt.Fprintf(&b, "- %s\n", desc)
	}

	countdown := LaunchCountdown(doc.Project, now)
	if countdown.Launched {
		b.WriteString("\nWe are live!")
	} else {
		fmt.Fprintf(&b, "\n%d days to launch. Timeline is locked in.", countdown.DaysRemaining)
	}

	return b.String()
}

// CheckinMessage builds the Monday check-in for the build team: this week's
// open tasks in priority order.
func CheckinMessage(doc *model.Document, now time.Time) string {
	week := doc.Project.CurrentWeek
	open := FilterTasks(doc.Tasks, Filter{Key: "pending", Week: week}, now)
	open = PriorityOrder(open, now)

	var b strings.Builder
	fmt.Fprintf(&b, "Morning! Week %d priorities:\n\n", week)
	if len(open) == 0 {
		b.WriteString("- Nothing open this week, all caught up.\n")
	}
	for _, t := range open {
		marker := ""
		if IsOverdue(t, now) {
			marker = " (overdue)"
		}
		fmt.Fprintf(&b, "- [%s] %s%s\n", t.Priority, t.Description, marker)
	}
	b.WriteString("\nShout if anything is blocked.")
	return b.String()
}

func cap3(items []string) []string {
	if len(items) > 3 {
		return items[:3]
	}
	return items
}
