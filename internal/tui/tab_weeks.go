package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/cli"
	"github.com/kwesthuizen/trackdeck/internal/report"
	"github.com/kwesthuizen/trackdeck/internal/tui/components"
	"github.com/kwesthuizen/trackdeck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderWeeksTab(cw int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	currentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(headerStyle.Render("Timeline"))
	b.WriteString("\n\n")

	barW := cw - 34
	if barW < 10 {
		barW = 10
	}

	for _, w := range a.weeks {
		marker := "  "
		label := fmt.Sprintf("Week %d", w.Week)
		if w.Current {
			marker = currentStyle.Render("> ")
			label = currentStyle.Render(label)
		} else {
			label = mutedStyle.Render(label)
		}

		pct := 0.0
		if w.Total > 0 {
			pct = float64(w.Completed) / float64(w.Total)
		}

		fmt.Fprintf(&b, " %s%s  %s  %s\n",
			marker, label,
			components.ProgressBar(pct, barW),
			mutedStyle.Render(fmt.Sprintf("%d/%d", w.Completed, w.Total)))
	}

	// Completion sparkline across the weeks
	values := make([]float64, len(a.weeks))
	for i, w := range a.weeks {
		values[i] = float64(w.Completed)
	}
	b.WriteString("\n ")
	b.WriteString(mutedStyle.Render("Done per week  "))
	b.WriteString(components.Sparkline(values, t.Accent))
	b.WriteString("\n\n")

	countdown := report.LaunchCountdown(a.doc.Project, time.Now())
	if countdown.Launched {
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Foreground(t.Green).Bold(true).Render("Launched!"))
	} else {
		fmt.Fprintf(&b, " %s %s\n",
			currentStyle.Render(fmt.Sprintf("%d days to launch", countdown.DaysRemaining)),
			mutedStyle.Render("("+cli.FormatDate(a.doc.Project.LaunchDate)+")"))
	}

	return b.String()
}
