package task

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used by the Date field.
const DateLayout = "2006-01-02"

// FormatDate renders t as a calendar-day string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate validates and parses a calendar-day string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// AddDays shifts a calendar-day string by the given number of days
// (negative values go backwards).
func AddDays(date string, days int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, days)), nil
}

// DisplayDate renders a date for headers, e.g. "Monday, July 21, 2025",
// with a "Today · " prefix when the date is the current day.
func DisplayDate(date string, now time.Time) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	if date == FormatDate(now) {
		return "Today · " + t.Format("Monday, January 2")
	}
	return t.Format("Monday, January 2, 2006")
}
