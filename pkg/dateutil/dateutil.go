// Package dateutil provides calendar-day helpers shared by the recurrence,
// scoring, and insights packages. All day arithmetic is done in UTC so that
// a record's calendar day is stable regardless of the host timezone.
package dateutil

import "time"

// Key returns the ISO calendar date (YYYY-MM-DD) for t, in UTC.
func Key(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// StartOfDay returns midnight UTC of the calendar day containing t.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfMonth returns midnight UTC of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return Key(a) == Key(b)
}

// LastNDays returns the n calendar days ending with (and including) now,
// oldest first. Used by the trend charts' rolling windows.
func LastNDays(now time.Time, n int) []time.Time {
	days := make([]time.Time, 0, n)
	start := StartOfDay(now)
	for i := n - 1; i >= 0; i-- {
		days = append(days, start.AddDate(0, 0, -i))
	}
	return days
}
