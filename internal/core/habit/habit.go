// Package habit defines the habit domain model: recurring activities whose
// concrete occurrences are generated by the recurrence package.
package habit

import (
	"time"

	"github.com/taskgamer/taskgamer/pkg/dateutil"
)

// Frequency controls how often a habit recurs.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Habit represents a recurring activity.
//
// ReminderDay is the weekday index (0=Sunday..6) for weekly habits and the
// day of month (1-31) for monthly habits; it is unused for daily habits and
// nil when never set. Streak is an informational counter maintained by
// callers, never derived here. CompletedDates holds the ISO calendar dates
// (YYYY-MM-DD) on which the habit was explicitly marked done.
type Habit struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Category       string    `json:"category"`
	Frequency      Frequency `json:"frequency"`
	ReminderDay    *int      `json:"reminderDay"`
	Streak         int       `json:"streak"`
	CompletedDates []string  `json:"completedDates"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CompletedOn reports whether the habit was marked done on the calendar day
// containing date.
func (h Habit) CompletedOn(date time.Time) bool {
	key := dateutil.Key(date)
	for _, d := range h.CompletedDates {
		if d == key {
			return true
		}
	}
	return false
}
