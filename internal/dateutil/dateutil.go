// Package dateutil provides date parsing and week-anchor utilities.
// Weeks start on Sunday throughout the application.
package dateutil

import (
	"errors"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
)

// DateLayout is the wire and display format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// TruncateToDay returns the date with the time portion zeroed.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Sunday of the week containing the given
// date, truncated to the day.
func StartOfWeek(t time.Time) time.Time {
	t = TruncateToDay(t)
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// UpcomingSundays returns n week anchors starting with the Sunday of
// the week containing from, each one week apart.
func UpcomingSundays(from time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	anchors := make([]time.Time, n)
	sunday := StartOfWeek(from)
	for i := range anchors {
		anchors[i] = sunday.AddDate(0, 0, 7*i)
	}
	return anchors
}

// SameDay returns true if both times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
