package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/cli"
	"github.com/kwesthuizen/trackdeck/internal/model"
	"github.com/kwesthuizen/trackdeck/internal/report"
	"github.com/kwesthuizen/trackdeck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTasksTab(cw, contentH int) string {
	t := theme.Active
	now := time.Now()
	tasks := a.visibleTasks()

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	selectedStyle := lipgloss.NewStyle().Background(t.SurfaceHover).Foreground(t.TextPrimary)
	doneStyle := lipgloss.NewStyle().Foreground(t.TextDim).Strikethrough(true)

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(headerStyle.Render("Tasks"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d shown", len(tasks))))
	b.WriteString("   ")

	// Filter pills
	for i, key := range report.FilterKeys {
		if i == a.taskFilter {
			b.WriteString(lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("[" + key + "]"))
		} else {
			b.WriteString(dimStyle.Render(" " + key + " "))
		}
	}
	b.WriteString("\n\n")

	if len(tasks) == 0 {
		b.WriteString(mutedStyle.Render("  Nothing here. Press a to add a task."))
		return b.String()
	}

	// Keep the cursor visible within the content area
	visible := contentH - 5
	if visible < 3 {
		visible = 3
	}
	start := 0
	if a.taskCursor >= visible {
		start = a.taskCursor - visible + 1
	}
	end := start + visible
	if end > len(tasks) {
		end = len(tasks)
	}

	for i := start; i < end; i++ {
		task := tasks[i]

		due := cli.FormatDue(task.Deadline, now)
		if task.Status == model.TaskCompleted {
			due = "done"
		}

		line := fmt.Sprintf(" %s %s %-*s W%d  %-10s %s",
			cli.StatusGlyph(task.Status),
			prioGlyph(task.Priority),
			cw-30, truncStr(task.Description, cw-30),
			task.Week,
			truncStr(task.Assignee, 10),
			due,
		)

		switch {
		case i == a.taskCursor:
			b.WriteString(selectedStyle.Render(line))
		case task.Status == model.TaskCompleted:
			b.WriteString(doneStyle.Render(line))
		case report.IsOverdue(task, now):
			b.WriteString(lipgloss.NewStyle().Foreground(t.Red).Render(line))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Render(line))
		}
		b.WriteString("\n")
	}

	if end < len(tasks) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(tasks)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  enter toggle done · a add · tab filter · j/k move"))

	return b.String()
}
