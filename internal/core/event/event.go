// Package event defines the ad-hoc calendar event domain model.
package event

import "time"

// Categories reserved for the other entity kinds. An event created with one
// of these is redirected to the matching collection instead of being stored
// as an event.
const (
	CategoryTask  = "task"
	CategoryGoal  = "goal"
	CategoryHabit = "habit"
)

// CategoryReserved reports whether category belongs to another entity kind.
func CategoryReserved(category string) bool {
	switch category {
	case CategoryTask, CategoryGoal, CategoryHabit:
		return true
	}
	return false
}

// Event represents a one-off calendar entry.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}
