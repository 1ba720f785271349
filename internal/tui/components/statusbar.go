package components

import (
	"fmt"

	"github.com/kwesthuizen/trackdeck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, alerts int, watching bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	right := ""
	if alerts > 0 {
		alertStyle := lipgloss.NewStyle().Foreground(t.Orange)
		right = alertStyle.Render(fmt.Sprintf("%d alerts", alerts)) + "  "
	}
	if watching {
		right += "watching "
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
