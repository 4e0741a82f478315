package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskgamer/taskgamer/internal/core/habit"
	"github.com/taskgamer/taskgamer/pkg/dateutil"
)

// HabitService wraps habit.Store with completion toggling for calendar
// occurrences.
type HabitService struct {
	store habit.Store
	log   zerolog.Logger
}

// NewHabitService creates a new HabitService.
func NewHabitService(store habit.Store, log zerolog.Logger) *HabitService {
	return &HabitService{
		store: store,
		log:   log.With().Str("component", "habit-service").Logger(),
	}
}

// Create persists a new habit.
func (s *HabitService) Create(ctx context.Context, h habit.Habit) (habit.Habit, error) {
	if h.Frequency != "" && !h.Frequency.Valid() {
		return habit.Habit{}, fmt.Errorf("invalid habit frequency %q", h.Frequency)
	}

	if err := s.store.Create(ctx, &h); err != nil {
		return habit.Habit{}, fmt.Errorf("create habit: %w", err)
	}

	s.log.Debug().Str("id", h.ID).Str("title", h.Title).Msg("habit created")
	return h, nil
}

// Get returns a single habit by ID.
func (s *HabitService) Get(ctx context.Context, id string) (habit.Habit, error) {
	return s.store.Get(ctx, id)
}

// ToggleCompletion flips the habit's completion for the calendar day
// containing date. Returns the updated habit and whether the day is now
// marked completed.
func (s *HabitService) ToggleCompletion(ctx context.Context, id string, date time.Time) (habit.Habit, bool, error) {
	h, err := s.store.Get(ctx, id)
	if err != nil {
		return habit.Habit{}, false, err
	}

	key := dateutil.Key(date)
	completed := true
	for i, d := range h.CompletedDates {
		if d == key {
			h.CompletedDates = append(h.CompletedDates[:i], h.CompletedDates[i+1:]...)
			completed = false
			break
		}
	}
	if completed {
		h.CompletedDates = append(h.CompletedDates, key)
	}

	if err := s.store.Update(ctx, h); err != nil {
		return habit.Habit{}, false, fmt.Errorf("toggle habit completion: %w", err)
	}

	s.log.Debug().Str("id", id).Str("date", key).Bool("completed", completed).Msg("habit completion toggled")
	return h, completed, nil
}

// SetStreak updates the informational streak counter.
func (s *HabitService) SetStreak(ctx context.Context, id string, streak int) (habit.Habit, error) {
	if streak < 0 {
		return habit.Habit{}, fmt.Errorf("streak cannot be negative")
	}

	h, err := s.store.Get(ctx, id)
	if err != nil {
		return habit.Habit{}, err
	}

	h.Streak = streak
	if err := s.store.Update(ctx, h); err != nil {
		return habit.Habit{}, fmt.Errorf("update habit streak: %w", err)
	}

	return h, nil
}

// Delete removes a habit by ID.
func (s *HabitService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Debug().Str("id", id).Msg("habit deleted")
	return nil
}

// List returns all habits in insertion order.
func (s *HabitService) List(ctx context.Context) ([]habit.Habit, error) {
	habits, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return habits, nil
}
