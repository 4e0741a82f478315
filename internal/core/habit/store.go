package habit

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a habit does not exist.
var ErrNotFound = errors.New("habit not found")

// Store defines the interface for habit persistence.
type Store interface {
	// List returns all habits in insertion order.
	List(ctx context.Context) ([]Habit, error)

	// Get returns a single habit by ID.
	// Returns ErrNotFound if the habit does not exist.
	Get(ctx context.Context, id string) (Habit, error)

	// Create persists a new habit. The store populates ID and CreatedAt
	// if not already set.
	Create(ctx context.Context, h *Habit) error

	// Update replaces the stored habit with the same ID.
	// Returns ErrNotFound if the habit does not exist.
	Update(ctx context.Context, h Habit) error

	// Delete removes a habit by ID.
	// Returns ErrNotFound if the habit does not exist.
	Delete(ctx context.Context, id string) error
}
