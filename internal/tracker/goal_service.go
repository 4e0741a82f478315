package tracker

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskgamer/taskgamer/internal/core/goal"
)

// GoalService wraps goal.Store with milestone tracking and the derived
// progress/status invariants.
type GoalService struct {
	store goal.Store
	log   zerolog.Logger
}

// NewGoalService creates a new GoalService.
func NewGoalService(store goal.Store, log zerolog.Logger) *GoalService {
	return &GoalService{
		store: store,
		log:   log.With().Str("component", "goal-service").Logger(),
	}
}

// ParseMilestones builds milestones from newline-separated text, one per
// non-blank line.
func ParseMilestones(text string) []goal.Milestone {
	var milestones []goal.Milestone
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		milestones = append(milestones, goal.Milestone{
			ID:   uuid.NewString(),
			Text: line,
		})
	}
	return milestones
}

// Create persists a new goal with not-started status and derived progress.
func (s *GoalService) Create(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	g.Progress = g.ComputeProgress()

	if err := s.store.Create(ctx, &g); err != nil {
		return goal.Goal{}, fmt.Errorf("create goal: %w", err)
	}

	s.log.Debug().Str("id", g.ID).Str("title", g.Title).Msg("goal created")
	return g, nil
}

// Get returns a single goal by ID.
func (s *GoalService) Get(ctx context.Context, id string) (goal.Goal, error) {
	return s.store.Get(ctx, id)
}

// GoalEdit is a partial update applied to an existing goal. Nil fields are
// left untouched; replacing milestones resets their completion.
type GoalEdit struct {
	Title       *string
	Description *string
	Category    *string
	Deadline    *time.Time
	Milestones  []goal.Milestone
}

// Edit applies a partial update to an existing goal, recomputing progress
// when the milestones change.
func (s *GoalService) Edit(ctx context.Context, id string, edit GoalEdit) (goal.Goal, error) {
	g, err := s.store.Get(ctx, id)
	if err != nil {
		return goal.Goal{}, err
	}

	if edit.Title != nil {
		g.Title = *edit.Title
	}
	if edit.Description != nil {
		g.Description = *edit.Description
	}
	if edit.Category != nil {
		g.Category = *edit.Category
	}
	if edit.Deadline != nil {
		g.Deadline = *edit.Deadline
	}
	if edit.Milestones != nil {
		g.Milestones = edit.Milestones
	}
	g.Progress = g.ComputeProgress()

	if err := s.store.Update(ctx, g); err != nil {
		return goal.Goal{}, fmt.Errorf("update goal: %w", err)
	}

	return g, nil
}

// UpdateStatus transitions a goal to the given status, keeping the
// Completed flag and completion timestamp consistent with it.
func (s *GoalService) UpdateStatus(ctx context.Context, id string, status goal.Status) (goal.Goal, error) {
	if !status.Valid() {
		return goal.Goal{}, fmt.Errorf("invalid goal status %q", status)
	}

	g, err := s.store.Get(ctx, id)
	if err != nil {
		return goal.Goal{}, err
	}

	g = applyStatus(g, status)

	if err := s.store.Update(ctx, g); err != nil {
		return goal.Goal{}, fmt.Errorf("update goal status: %w", err)
	}

	s.log.Debug().Str("id", id).Str("status", string(status)).Msg("goal status updated")
	return g, nil
}

// MarkInProgress transitions a goal to in-progress.
func (s *GoalService) MarkInProgress(ctx context.Context, id string) (goal.Goal, error) {
	return s.UpdateStatus(ctx, id, goal.StatusInProgress)
}

// ToggleMilestone flips a milestone's completion and recomputes the goal's
// progress. When the toggle completes the final milestone, the goal itself
// transitions to completed.
func (s *GoalService) ToggleMilestone(ctx context.Context, goalID, milestoneID string) (goal.Goal, error) {
	g, err := s.store.Get(ctx, goalID)
	if err != nil {
		return goal.Goal{}, err
	}

	found := false
	for i := range g.Milestones {
		if g.Milestones[i].ID == milestoneID {
			g.Milestones[i].Completed = !g.Milestones[i].Completed
			found = true
			break
		}
	}
	if !found {
		return goal.Goal{}, goal.ErrMilestoneNotFound
	}

	g.Progress = g.ComputeProgress()

	if g.AllMilestonesCompleted() && !g.Completed {
		g = applyStatus(g, goal.StatusCompleted)
	}

	if err := s.store.Update(ctx, g); err != nil {
		return goal.Goal{}, fmt.Errorf("toggle milestone: %w", err)
	}

	return g, nil
}

// Delete removes a goal by ID.
func (s *GoalService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Debug().Str("id", id).Msg("goal deleted")
	return nil
}

// List returns all goals, incomplete goals first and by deadline within
// each group.
func (s *GoalService) List(ctx context.Context) ([]goal.Goal, error) {
	goals, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	sort.SliceStable(goals, func(i, j int) bool {
		if goals[i].Completed != goals[j].Completed {
			return !goals[i].Completed
		}
		return goals[i].Deadline.Before(goals[j].Deadline)
	})

	return goals, nil
}

// applyStatus sets the status and keeps Completed/CompletedAt consistent.
func applyStatus(g goal.Goal, status goal.Status) goal.Goal {
	wasCompleted := g.Completed
	g.Status = status
	g.Completed = status == goal.StatusCompleted

	switch {
	case g.Completed && !wasCompleted:
		now := time.Now().UTC()
		g.CompletedAt = &now
	case !g.Completed:
		g.CompletedAt = nil
	}

	return g
}
