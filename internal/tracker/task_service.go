package tracker

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/taskgamer/taskgamer/internal/core/task"
)

// statusOrder is the display ordering for task lists: actionable work
// first, completed last.
var statusOrder = map[task.Status]int{
	task.StatusPending:    0,
	task.StatusInProgress: 1,
	task.StatusCompleted:  2,
}

// TaskFilter controls which tasks List returns.
type TaskFilter struct {
	Status   task.Status // empty means all statuses
	Category string      // glob pattern, empty means all categories
	Search   string      // case-insensitive substring on title/description
}

// TaskEdit is a partial update applied to an existing task. Nil fields are
// left untouched.
type TaskEdit struct {
	Title       *string
	Description *string
	Category    *string
	DueDate     *time.Time
}

// TaskService wraps task.Store with list filtering and status transitions.
type TaskService struct {
	store task.Store
	log   zerolog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(store task.Store, log zerolog.Logger) *TaskService {
	return &TaskService{
		store: store,
		log:   log.With().Str("component", "task-service").Logger(),
	}
}

// Create persists a new task with pending status.
func (s *TaskService) Create(ctx context.Context, t task.Task) (task.Task, error) {
	if err := s.store.Create(ctx, &t); err != nil {
		return task.Task{}, fmt.Errorf("create task: %w", err)
	}

	s.log.Debug().Str("id", t.ID).Str("title", t.Title).Msg("task created")
	return t, nil
}

// Get returns a single task by ID.
func (s *TaskService) Get(ctx context.Context, id string) (task.Task, error) {
	return s.store.Get(ctx, id)
}

// Edit applies a partial update to an existing task.
func (s *TaskService) Edit(ctx context.Context, id string, edit TaskEdit) (task.Task, error) {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		return task.Task{}, err
	}

	if edit.Title != nil {
		t.Title = *edit.Title
	}
	if edit.Description != nil {
		t.Description = *edit.Description
	}
	if edit.Category != nil {
		t.Category = *edit.Category
	}
	if edit.DueDate != nil {
		t.DueDate = *edit.DueDate
	}

	if err := s.store.Update(ctx, t); err != nil {
		return task.Task{}, fmt.Errorf("update task: %w", err)
	}

	return t, nil
}

// UpdateStatus transitions a task to the given status. The completion
// timestamp is stamped on the transition into completed and cleared when
// the task leaves completed.
func (s *TaskService) UpdateStatus(ctx context.Context, id string, status task.Status) (task.Task, error) {
	if !status.Valid() {
		return task.Task{}, fmt.Errorf("invalid task status %q", status)
	}

	t, err := s.store.Get(ctx, id)
	if err != nil {
		return task.Task{}, err
	}

	if status == task.StatusCompleted && t.Status != task.StatusCompleted {
		now := time.Now().UTC()
		t.CompletedAt = &now
	}
	if status != task.StatusCompleted {
		t.CompletedAt = nil
	}
	t.Status = status

	if err := s.store.Update(ctx, t); err != nil {
		return task.Task{}, fmt.Errorf("update task status: %w", err)
	}

	s.log.Debug().Str("id", id).Str("status", string(status)).Msg("task status updated")
	return t, nil
}

// Delete removes a task by ID.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Debug().Str("id", id).Msg("task deleted")
	return nil
}

// List returns tasks matching the filter, sorted by status order and then
// due date within each status.
func (s *TaskService) List(ctx context.Context, filter TaskFilter) ([]task.Task, error) {
	tasks, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	filtered := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Category != "" {
			ok, err := doublestar.Match(filter.Category, t.Category)
			if err != nil {
				return nil, fmt.Errorf("invalid category pattern %q: %w", filter.Category, err)
			}
			if !ok {
				continue
			}
		}
		if filter.Search != "" && !matchesSearch(t, filter.Search) {
			continue
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if d := statusOrder[filtered[i].Status] - statusOrder[filtered[j].Status]; d != 0 {
			return d < 0
		}
		return filtered[i].DueDate.Before(filtered[j].DueDate)
	})

	return filtered, nil
}

func matchesSearch(t task.Task, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}
