// Package goal defines the goal domain model: long-running objectives
// tracked against a deadline with ordered milestones.
package goal

import "time"

// Status represents the lifecycle state of a goal.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known goal statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Milestone is a single checklist step toward a goal.
type Milestone struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Goal represents an objective with a deadline and milestone checklist.
//
// Progress is derived from Milestones and must never be persisted out of
// sync with them; Completed mirrors Status == StatusCompleted.
type Goal struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category"`
	Deadline    time.Time   `json:"deadline"`
	Milestones  []Milestone `json:"milestones"`
	Progress    float64     `json:"progress"`
	Status      Status      `json:"status"`
	Completed   bool        `json:"completed"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// ComputeProgress returns the completed-milestone fraction as a 0-100
// percentage. A goal with no milestones has progress 0.
func (g Goal) ComputeProgress() float64 {
	if len(g.Milestones) == 0 {
		return 0
	}
	done := 0
	for _, m := range g.Milestones {
		if m.Completed {
			done++
		}
	}
	return float64(done) / float64(len(g.Milestones)) * 100
}

// AllMilestonesCompleted reports whether every milestone is completed.
// Returns false for goals without milestones.
func (g Goal) AllMilestonesCompleted() bool {
	if len(g.Milestones) == 0 {
		return false
	}
	for _, m := range g.Milestones {
		if !m.Completed {
			return false
		}
	}
	return true
}
