package cli

import (
	"testing"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/model"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{11400, "11,400"},
		{1234567, "1,234,567"},
		{-5000, "-5,000"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.n); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(11400); got != "R11,400" {
		t.Errorf("FormatCurrency(11400) = %q", got)
	}
	if got := FormatCurrency(-250); got != "-R250" {
		t.Errorf("FormatCurrency(-250) = %q", got)
	}
	if got := FormatCurrency(0); got != "R0" {
		t.Errorf("FormatCurrency(0) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.328); got != "32.8%" {
		t.Errorf("FormatPercent(0.328) = %q", got)
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Errorf("FormatPercent(0) = %q", got)
	}
}

func TestFormatDue(t *testing.T) {
	now := time.Date(2024, 12, 10, 14, 0, 0, 0, time.UTC)
	day := func(s string) model.Date {
		d, err := model.ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate: %v", err)
		}
		return d
	}

	if got := FormatDue(day("2024-12-10"), now); got != "today" {
		t.Errorf("due today = %q", got)
	}
	if got := FormatDue(day("2024-12-13"), now); got != "3d" {
		t.Errorf("due in 3 days = %q", got)
	}
	if got := FormatDue(day("2024-12-08"), now); got != "2d late" {
		t.Errorf("2 days late = %q", got)
	}
	if got := FormatDue(model.Date{}, now); got != "-" {
		t.Errorf("zero date = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	d, err := model.ParseDate("2025-01-12")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := FormatDate(d); got != "Sun 12 Jan" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate(model.Date{}); got != "-" {
		t.Errorf("zero date = %q", got)
	}
}

func TestStatusGlyph(t *testing.T) {
	if StatusGlyph(model.TaskCompleted) != "✓" || StatusGlyph(model.TaskPending) != "·" {
		t.Error("wrong status glyphs")
	}
}
