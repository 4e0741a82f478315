package goal

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a goal does not exist.
	ErrNotFound = errors.New("goal not found")
	// ErrMilestoneNotFound is returned when a milestone ID does not exist
	// within a goal.
	ErrMilestoneNotFound = errors.New("milestone not found")
)

// Store defines the interface for goal persistence.
type Store interface {
	// List returns all goals in insertion order.
	List(ctx context.Context) ([]Goal, error)

	// Get returns a single goal by ID.
	// Returns ErrNotFound if the goal does not exist.
	Get(ctx context.Context, id string) (Goal, error)

	// Create persists a new goal. The store populates ID, Status, and
	// CreatedAt if not already set.
	Create(ctx context.Context, g *Goal) error

	// Update replaces the stored goal with the same ID.
	// Returns ErrNotFound if the goal does not exist.
	Update(ctx context.Context, g Goal) error

	// Delete removes a goal by ID.
	// Returns ErrNotFound if the goal does not exist.
	Delete(ctx context.Context, id string) error
}
