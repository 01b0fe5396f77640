package timeutil

import (
	"cmp"
	"time"
)

// DateLayout is the YYYY-MM-DD format used by every data file.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CompareDates orders YYYY-MM-DD strings chronologically; unparseable values sort lexically.
func CompareDates(a, b string) int {
	ta, errA := ParseDate(a)
	tb, errB := ParseDate(b)
	if errA != nil || errB != nil {
		return cmp.Compare(a, b)
	}
	return ta.Compare(tb)
}

// OnOrAfter reports whether date parses and falls on or after pivot. Unparseable dates
// are never in the window.
func OnOrAfter(date string, pivot time.Time) bool {
	day, err := ParseDate(date)
	return err == nil && !day.Before(pivot)
}
