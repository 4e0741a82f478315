package jsonfile

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskgamer/taskgamer/internal/core/goal"
)

// GoalStore implements goal.Store using a JSON file for persistence.
type GoalStore struct {
	c *collection[goal.Goal]
}

var _ goal.Store = (*GoalStore)(nil)

// NewGoalStore creates a goal store persisting to goals.json in dataDir.
func NewGoalStore(dataDir string, log zerolog.Logger) *GoalStore {
	return &GoalStore{c: newCollection[goal.Goal](filepath.Join(dataDir, "goals.json"), log)}
}

// List returns all goals in insertion order.
func (s *GoalStore) List(ctx context.Context) ([]goal.Goal, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	return s.c.load()
}

// Get returns a goal by ID. Returns goal.ErrNotFound if not found.
func (s *GoalStore) Get(ctx context.Context, id string) (goal.Goal, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	goals, err := s.c.load()
	if err != nil {
		return goal.Goal{}, err
	}

	for _, g := range goals {
		if g.ID == id {
			return g, nil
		}
	}

	return goal.Goal{}, goal.ErrNotFound
}

// Create appends a new goal, assigning ID, Status, and CreatedAt when unset.
func (s *GoalStore) Create(ctx context.Context, g *goal.Goal) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	goals, err := s.c.load()
	if err != nil {
		return err
	}

	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Status == "" {
		g.Status = goal.StatusNotStarted
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	if g.Milestones == nil {
		g.Milestones = []goal.Milestone{}
	}

	return s.c.save(append(goals, *g))
}

// Update replaces the stored goal with the same ID.
func (s *GoalStore) Update(ctx context.Context, g goal.Goal) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	goals, err := s.c.load()
	if err != nil {
		return err
	}

	for i := range goals {
		if goals[i].ID == g.ID {
			goals[i] = g
			return s.c.save(goals)
		}
	}

	return goal.ErrNotFound
}

// Delete removes a goal by ID.
func (s *GoalStore) Delete(ctx context.Context, id string) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	goals, err := s.c.load()
	if err != nil {
		return err
	}

	for i := range goals {
		if goals[i].ID == id {
			return s.c.save(append(goals[:i], goals[i+1:]...))
		}
	}

	return goal.ErrNotFound
}
