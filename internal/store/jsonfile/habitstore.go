package jsonfile

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskgamer/taskgamer/internal/core/habit"
)

// HabitStore implements habit.Store using a JSON file for persistence.
type HabitStore struct {
	c *collection[habit.Habit]
}

var _ habit.Store = (*HabitStore)(nil)

// NewHabitStore creates a habit store persisting to habits.json in dataDir.
func NewHabitStore(dataDir string, log zerolog.Logger) *HabitStore {
	return &HabitStore{c: newCollection[habit.Habit](filepath.Join(dataDir, "habits.json"), log)}
}

// List returns all habits in insertion order.
func (s *HabitStore) List(ctx context.Context) ([]habit.Habit, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	return s.c.load()
}

// Get returns a habit by ID. Returns habit.ErrNotFound if not found.
func (s *HabitStore) Get(ctx context.Context, id string) (habit.Habit, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	habits, err := s.c.load()
	if err != nil {
		return habit.Habit{}, err
	}

	for _, h := range habits {
		if h.ID == id {
			return h, nil
		}
	}

	return habit.Habit{}, habit.ErrNotFound
}

// Create appends a new habit, assigning ID and CreatedAt when unset.
func (s *HabitStore) Create(ctx context.Context, h *habit.Habit) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	habits, err := s.c.load()
	if err != nil {
		return err
	}

	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.Frequency == "" {
		h.Frequency = habit.FrequencyDaily
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC()
	}
	if h.CompletedDates == nil {
		h.CompletedDates = []string{}
	}

	return s.c.save(append(habits, *h))
}

// Update replaces the stored habit with the same ID.
func (s *HabitStore) Update(ctx context.Context, h habit.Habit) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	habits, err := s.c.load()
	if err != nil {
		return err
	}

	for i := range habits {
		if habits[i].ID == h.ID {
			habits[i] = h
			return s.c.save(habits)
		}
	}

	return habit.ErrNotFound
}

// Delete removes a habit by ID.
func (s *HabitStore) Delete(ctx context.Context, id string) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	habits, err := s.c.load()
	if err != nil {
		return err
	}

	for i := range habits {
		if habits[i].ID == id {
			return s.c.save(append(habits[:i], habits[i+1:]...))
		}
	}

	return habit.ErrNotFound
}
