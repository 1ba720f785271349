package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for all calendar dates in the document.
const DateLayout = "2006-01-02"

// Date is a calendar date (no time-of-day) stored as an ISO YYYY-MM-DD string.
type Date struct {
	time.Time
}

// ParseDate parses an ISO YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// String returns the ISO form, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON encodes the date as a quoted ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted ISO string. Malformed dates are an error so
// they get rejected at the persistence boundary, not deep in aggregation.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysUntil returns whole days from now's calendar date to d.
func (d Date) DaysUntil(now time.Time) int {
	from := DateOf(now)
	return int(d.Sub(from.Time).Hours() / 24)
}
