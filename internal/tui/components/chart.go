package components

import (
	"fmt"
	"strings"

	"github.com/kwesthuizen/trackdeck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// HBarRow is one row of a horizontal bar chart.
type HBarRow struct {
	Label string
	Value int
	Text  string // rendered after the bar, usually the formatted value
	Color lipgloss.Color
}

// HBarChart renders labeled horizontal bars scaled to the largest value.
// labelW fixes the label column; barW is the maximum bar length.
func HBarChart(rows []HBarRow, labelW, barW int) string {
	if len(rows) == 0 {
		return ""
	}
	t := theme.Active

	maxVal := 0
	for _, r := range rows {
		if r.Value > maxVal {
			maxVal = r.Value
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for i, r := range rows {
		barLen := 0
		if maxVal > 0 {
			barLen = r.Value * barW / maxVal
		}
		if r.Value > 0 && barLen == 0 {
			barLen = 1
		}

		barStyle := lipgloss.NewStyle().Foreground(r.Color)
		fmt.Fprintf(&b, "%s %s %s",
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, r.Label)),
			barStyle.Render(strings.Repeat("█", barLen)),
			textStyle.Render(r.Text),
		)
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
