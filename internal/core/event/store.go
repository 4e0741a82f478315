package event

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an event does not exist.
var ErrNotFound = errors.New("event not found")

// Store defines the interface for event persistence.
type Store interface {
	// List returns all events in insertion order.
	List(ctx context.Context) ([]Event, error)

	// Get returns a single event by ID.
	// Returns ErrNotFound if the event does not exist.
	Get(ctx context.Context, id string) (Event, error)

	// Create persists a new event. The store populates ID and CreatedAt
	// if not already set.
	Create(ctx context.Context, e *Event) error

	// Delete removes an event by ID.
	// Returns ErrNotFound if the event does not exist.
	Delete(ctx context.Context, id string) error
}
