// Package focus defines focus-session statistics and the pomodoro timer
// state machine.
package focus

import (
	"context"
	"time"

	"github.com/taskgamer/taskgamer/pkg/dateutil"
)

// Stats accumulates focus-session counters across the life of the tracker.
//
// DailySessions is reset whenever the calendar day changes between recorded
// sessions. LastSessionTimestamp marks the start of an in-progress work
// session and is nil otherwise.
type Stats struct {
	TotalSessions        int        `json:"totalSessions"`
	TotalFocusTime       int        `json:"totalFocusTime"` // minutes
	DailySessions        int        `json:"dailySessions"`
	LastSessionDate      string     `json:"lastSessionDate,omitempty"` // ISO date
	LastSessionTimestamp *time.Time `json:"lastSessionTimestamp,omitempty"`
}

// Record folds a completed work session of the given length into the stats.
// The daily counter resets when the session lands on a new calendar day.
func (s *Stats) Record(minutes int, now time.Time) {
	today := dateutil.Key(now)
	if s.LastSessionDate != today {
		s.DailySessions = 0
		s.LastSessionDate = today
	}

	s.TotalSessions++
	s.DailySessions++
	s.TotalFocusTime += minutes
	s.LastSessionTimestamp = nil
}

// AverageSession returns the mean work-session length in minutes, 0 when no
// sessions have been recorded.
func (s Stats) AverageSession() float64 {
	if s.TotalSessions == 0 {
		return 0
	}
	return float64(s.TotalFocusTime) / float64(s.TotalSessions)
}

// Store defines the interface for focus-session stats persistence.
type Store interface {
	// Get returns the current stats. A store with no persisted stats
	// returns the zero value.
	Get(ctx context.Context) (Stats, error)

	// Save persists the stats.
	Save(ctx context.Context, s Stats) error
}
