package jsonfile

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskgamer/taskgamer/internal/core/task"
)

// TaskStore implements task.Store using a JSON file for persistence.
type TaskStore struct {
	c *collection[task.Task]
}

var _ task.Store = (*TaskStore)(nil)

// NewTaskStore creates a task store persisting to tasks.json in dataDir.
func NewTaskStore(dataDir string, log zerolog.Logger) *TaskStore {
	return &TaskStore{c: newCollection[task.Task](filepath.Join(dataDir, "tasks.json"), log)}
}

// List returns all tasks in insertion order.
func (s *TaskStore) List(ctx context.Context) ([]task.Task, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	return s.c.load()
}

// Get returns a task by ID. Returns task.ErrNotFound if not found.
func (s *TaskStore) Get(ctx context.Context, id string) (task.Task, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	tasks, err := s.c.load()
	if err != nil {
		return task.Task{}, err
	}

	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}

	return task.Task{}, task.ErrNotFound
}

// Create appends a new task, assigning ID, Status, and CreatedAt when unset.
func (s *TaskStore) Create(ctx context.Context, t *task.Task) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	tasks, err := s.c.load()
	if err != nil {
		return err
	}

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = task.StatusPending
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	return s.c.save(append(tasks, *t))
}

// Update replaces the stored task with the same ID.
func (s *TaskStore) Update(ctx context.Context, t task.Task) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	tasks, err := s.c.load()
	if err != nil {
		return err
	}

	for i := range tasks {
		if tasks[i].ID == t.ID {
			tasks[i] = t
			return s.c.save(tasks)
		}
	}

	return task.ErrNotFound
}

// Delete removes a task by ID.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	tasks, err := s.c.load()
	if err != nil {
		return err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			return s.c.save(append(tasks[:i], tasks[i+1:]...))
		}
	}

	return task.ErrNotFound
}
