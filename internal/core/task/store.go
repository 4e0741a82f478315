package task

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a task does not exist.
var ErrNotFound = errors.New("task not found")

// Store defines the interface for task persistence.
type Store interface {
	// List returns all tasks in insertion order.
	List(ctx context.Context) ([]Task, error)

	// Get returns a single task by ID.
	// Returns ErrNotFound if the task does not exist.
	Get(ctx context.Context, id string) (Task, error)

	// Create persists a new task. The store populates ID, Status, and
	// CreatedAt if not already set.
	Create(ctx context.Context, t *Task) error

	// Update replaces the stored task with the same ID.
	// Returns ErrNotFound if the task does not exist.
	Update(ctx context.Context, t Task) error

	// Delete removes a task by ID.
	// Returns ErrNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error
}
