package tui

import (
	"fmt"
	"strings"

	"github.com/kwesthuizen/trackdeck/internal/config"
	"github.com/kwesthuizen/trackdeck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSettingsTab(_ int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	cfg, _ := config.Load()

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(headerStyle.Render("Settings"))
	b.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"Data file", a.dataPath},
		{"Config file", config.Path()},
		{"Theme", theme.Active.Name},
		{"Currency", cfg.General.Currency},
		{"Due-soon window", fmt.Sprintf("%d days", cfg.Alerts.DueSoonDays)},
		{"Budget warning", fmt.Sprintf("%d%%", cfg.Alerts.BudgetWarnPercent)},
		{"Launch warning", fmt.Sprintf("%d days", cfg.Alerts.LaunchWarnDays)},
		{"Snapshots", fmt.Sprintf("%v (keep %d)", cfg.Snapshots.Enabled, cfg.Snapshots.Keep)},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-18s", r.label)),
			valueStyle.Render(r.value))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  enter cycles the theme (this session) · edit config with `trackdeck setup`"))

	return b.String()
}
