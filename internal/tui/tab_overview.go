package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/cli"
	"github.com/kwesthuizen/trackdeck/internal/model"
	"github.com/kwesthuizen/trackdeck/internal/report"
	"github.com/kwesthuizen/trackdeck/internal/tui/components"
	"github.com/kwesthuizen/trackdeck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	doc := a.doc

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	b.WriteString("\n ")
	b.WriteString(titleStyle.Render(doc.Project.Name))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  ·  %s  ·  week %d of %d",
		doc.Project.Client, doc.Project.CurrentWeek, model.TotalWeeks)))
	b.WriteString("\n\n")

	launchHint := cli.FormatDate(doc.Project.LaunchDate)
	launchValue := fmt.Sprintf("%d days", a.countdown.DaysRemaining)
	if a.countdown.Launched {
		launchValue = "live!"
		launchHint = ""
	}

	cards := []struct{ Label, Value, Hint string }{
		{"Tasks done", fmt.Sprintf("%d / %d", a.stats.Completed, a.stats.Total),
			fmt.Sprintf("%d overdue", a.stats.Overdue)},
		{"Received", cli.FormatCurrency(a.finances.Received),
			cli.FormatCurrency(a.finances.PendingIn) + " pending"},
		{"Profit", cli.FormatCurrency(a.finances.Profit),
			"balance " + cli.FormatCurrency(a.finances.Balance)},
		{"Launch", launchValue, launchHint},
	}
	b.WriteString(components.MetricCardRow(cards, cw-2))
	b.WriteString("\n\n")

	b.WriteString(" ")
	b.WriteString(mutedStyle.Render("Progress "))
	b.WriteString(components.ProgressBar(a.stats.Progress(), cw-24))
	b.WriteString("\n ")
	b.WriteString(components.BudgetBar("Budget", report.BudgetUtilization(doc.Finances), 8, cw-24))
	b.WriteString("\n")

	if len(a.notes) > 0 {
		var nb strings.Builder
		for i, n := range a.notes {
			style := severityStyle(n.Severity)
			nb.WriteString(style.Render(n.Title))
			nb.WriteString(" ")
			nb.WriteString(mutedStyle.Render(n.Message))
			if i < len(a.notes)-1 {
				nb.WriteString("\n")
			}
		}
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Needs attention", nb.String(), cw-2))
	}

	// This week's open tasks, most urgent first
	now := time.Now()
	open := report.PriorityOrder(report.FilterTasks(doc.Tasks,
		report.Filter{Key: "pending", Week: doc.Project.CurrentWeek}, now), now)
	if len(open) > 0 {
		var tb strings.Builder
		limit := 5
		if len(open) < limit {
			limit = len(open)
		}
		for i := 0; i < limit; i++ {
			task := open[i]
			line := fmt.Sprintf("%s %s", prioGlyph(task.Priority), truncStr(task.Description, cw-20))
			if report.IsOverdue(task, now) {
				line += " " + lipgloss.NewStyle().Foreground(t.Red).Render("(overdue)")
			}
			tb.WriteString(line)
			if i < limit-1 {
				tb.WriteString("\n")
			}
		}
		b.WriteString("\n")
		b.WriteString(components.ContentCard(fmt.Sprintf("This week (%d open)", len(open)), tb.String(), cw-2))
	}

	return b.String()
}

func severityStyle(s model.Severity) lipgloss.Style {
	t := theme.Active
	switch s {
	case model.SeverityUrgent:
		return lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	case model.SeverityWarning:
		return lipgloss.NewStyle().Foreground(t.Orange)
	default:
		return lipgloss.NewStyle().Foreground(t.Blue)
	}
}

func prioGlyph(p model.Priority) string {
	t := theme.Active
	switch p {
	case model.PriorityCritical:
		return lipgloss.NewStyle().Foreground(t.Red).Render("!!")
	case model.PriorityHigh:
		return lipgloss.NewStyle().Foreground(t.Orange).Render(" !")
	case model.PriorityLow:
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("  ")
	default:
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render(" ·")
	}
}
