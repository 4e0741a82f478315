package jsonfile

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskgamer/taskgamer/internal/core/event"
)

// EventStore implements event.Store using a JSON file for persistence.
type EventStore struct {
	c *collection[event.Event]
}

var _ event.Store = (*EventStore)(nil)

// NewEventStore creates an event store persisting to events.json in dataDir.
func NewEventStore(dataDir string, log zerolog.Logger) *EventStore {
	return &EventStore{c: newCollection[event.Event](filepath.Join(dataDir, "events.json"), log)}
}

// List returns all events in insertion order.
func (s *EventStore) List(ctx context.Context) ([]event.Event, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	return s.c.load()
}

// Get returns an event by ID. Returns event.ErrNotFound if not found.
func (s *EventStore) Get(ctx context.Context, id string) (event.Event, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	events, err := s.c.load()
	if err != nil {
		return event.Event{}, err
	}

	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}

	return event.Event{}, event.ErrNotFound
}

// Create appends a new event, assigning ID and CreatedAt when unset.
func (s *EventStore) Create(ctx context.Context, e *event.Event) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	events, err := s.c.load()
	if err != nil {
		return err
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	return s.c.save(append(events, *e))
}

// Delete removes an event by ID.
func (s *EventStore) Delete(ctx context.Context, id string) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	events, err := s.c.load()
	if err != nil {
		return err
	}

	for i := range events {
		if events[i].ID == id {
			return s.c.save(append(events[:i], events[i+1:]...))
		}
	}

	return event.ErrNotFound
}
