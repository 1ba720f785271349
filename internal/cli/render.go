package cli

import (
	"fmt"
	"strings"

	"github.com/kwesthuizen/trackdeck/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Palette (luxury gold on dark, matching the TUI jewel-dark theme)
var (
	ColorGold     = lipgloss.Color("#D4AF37")
	ColorGoldDim  = lipgloss.Color("#B8962E")
	ColorBorder   = lipgloss.Color("#282726")
	ColorTextDim  = lipgloss.Color("#575653")
	ColorTextMute = lipgloss.Color("#A0A0A0")
	ColorText     = lipgloss.Color("#FFFFFF")
	ColorGreen    = lipgloss.Color("#10B981")
	ColorOrange   = lipgloss.Color("#F59E0B")
	ColorRed      = lipgloss.Color("#EF4444")
	ColorBlue     = lipgloss.Color("#3B82F6")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGold).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGold)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMute)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// SeverityStyle returns the style for a notification severity.
func SeverityStyle(s model.Severity) lipgloss.Style {
	switch s {
	case model.SeverityUrgent:
		return lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	case model.SeverityWarning:
		return lipgloss.NewStyle().Foreground(ColorOrange)
	default:
		return lipgloss.NewStyle().Foreground(ColorBlue)
	}
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows. A row of
// {"---"} becomes a separator line.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if len(h) > widths[i] {
				widths[i] = len(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && lipgloss.Width(cell) > widths[i] {
					widths[i] = lipgloss.Width(cell)
				}
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			// Right-align all but the first column
			if i == 0 {
				b.WriteString(valueStyle.Render(" " + cell + strings.Repeat(" ", pad) + " "))
			} else {
				b.WriteString(valueStyle.Render(" " + strings.Repeat(" ", pad) + cell + " "))
			}
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// RenderProgressBar renders a text progress bar colored by completion level.
func RenderProgressBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	color := ColorRed
	switch {
	case pct >= 0.8:
		color = ColorGreen
	case pct >= 0.4:
		color = ColorOrange
	}

	barStyle := lipgloss.NewStyle().Foreground(color)
	return barStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled)) +
		" " + mutedStyle.Render(FormatPercent(pct))
}

// RenderHBar renders one labeled horizontal bar chart row scaled to maxValue.
func RenderHBar(label string, value, maxValue int, labelW, barW int, color lipgloss.Color) string {
	barLen := 0
	if maxValue > 0 {
		barLen = value * barW / maxValue
	}
	if barLen < 0 {
		barLen = 0
	}
	if value > 0 && barLen == 0 {
		barLen = 1
	}

	barStyle := lipgloss.NewStyle().Foreground(color)
	return fmt.Sprintf("  %s %s %s",
		mutedStyle.Render(fmt.Sprintf("%-*s", labelW, label)),
		barStyle.Render(strings.Repeat("█", barLen)),
		valueStyle.Render(FormatCurrency(value)),
	)
}
