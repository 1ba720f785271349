// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/model"
)

// currency is the display symbol prefixed to amounts.
var currency = "R"

// SetCurrency sets the display currency symbol.
func SetCurrency(symbol string) {
	if symbol != "" {
		currency = symbol
	}
}

// FormatCurrency formats a whole-unit amount with the currency symbol.
// e.g., 11400 -> "R11,400", -250 -> "-R250"
func FormatCurrency(amount int) string {
	if amount < 0 {
		return "-" + FormatCurrency(-amount)
	}
	return currency + FormatNumber(int64(amount))
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDate renders a date as "Mon 02 Jan", or "-" for the zero date.
func FormatDate(d model.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Format("Mon 02 Jan")
}

// FormatDue renders a deadline relative to now: "today", "3d", "2d late".
func FormatDue(d model.Date, now time.Time) string {
	if d.IsZero() {
		return "-"
	}
	days := d.DaysUntil(now)
	switch {
	case days == 0:
		return "today"
	case days < 0:
		return fmt.Sprintf("%dd late", -days)
	default:
		return fmt.Sprintf("%dd", days)
	}
}

// StatusGlyph returns the one-character marker for a task status.
func StatusGlyph(s model.TaskStatus) string {
	if s == model.TaskCompleted {
		return "✓"
	}
	return "·"
}

// PriorityLabel returns a fixed-width uppercase priority tag.
func PriorityLabel(p model.Priority) string {
	return fmt.Sprintf("%-8s", strings.ToUpper(string(p)))
}
