// Package recurrence expands habit recurrence rules into concrete dated
// occurrences over a window. Expansion is pure: the same habit and window
// always produce the same occurrences for a fixed completed-dates set, and
// nothing here mutates the habit.
package recurrence

import (
	"iter"
	"time"

	"github.com/taskgamer/taskgamer/internal/core/habit"
	"github.com/taskgamer/taskgamer/pkg/dateutil"
)

// Occurrence is one concrete dated instance generated from a habit's
// recurrence rule.
type Occurrence struct {
	Date      time.Time
	Completed bool
}

// Occurrences lazily yields one occurrence per calendar day in [from, to)
// on which the habit is active. A habit whose frequency requires a reminder
// day that is absent or out of range yields nothing rather than failing.
func Occurrences(h habit.Habit, from, to time.Time) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		end := dateutil.StartOfDay(to)
		for day := dateutil.StartOfDay(from); day.Before(end); day = day.AddDate(0, 0, 1) {
			if !activeOn(h, day) {
				continue
			}
			occ := Occurrence{Date: day, Completed: h.CompletedOn(day)}
			if !yield(occ) {
				return
			}
		}
	}
}

// Expand collects Occurrences into a slice.
func Expand(h habit.Habit, from, to time.Time) []Occurrence {
	var occs []Occurrence
	for occ := range Occurrences(h, from, to) {
		occs = append(occs, occ)
	}
	return occs
}

// activeOn reports whether the habit's rule fires on the given day.
//
// Monthly reminder days past the end of a shorter month simply never match,
// so such months produce no occurrence. That is the documented policy, not
// an error.
func activeOn(h habit.Habit, day time.Time) bool {
	switch h.Frequency {
	case habit.FrequencyDaily:
		return true
	case habit.FrequencyWeekly:
		if h.ReminderDay == nil || *h.ReminderDay < 0 || *h.ReminderDay > 6 {
			return false
		}
		return int(day.Weekday()) == *h.ReminderDay
	case habit.FrequencyMonthly:
		if h.ReminderDay == nil || *h.ReminderDay < 1 || *h.ReminderDay > 31 {
			return false
		}
		return day.Day() == *h.ReminderDay
	default:
		return false
	}
}
