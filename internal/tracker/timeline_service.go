package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskgamer/taskgamer/internal/core/config"
	"github.com/taskgamer/taskgamer/internal/core/event"
	"github.com/taskgamer/taskgamer/internal/core/goal"
	"github.com/taskgamer/taskgamer/internal/core/habit"
	"github.com/taskgamer/taskgamer/internal/core/task"
	"github.com/taskgamer/taskgamer/internal/core/timeline"
	"github.com/taskgamer/taskgamer/pkg/dateutil"
)

// TimelineService snapshots the entity stores and materializes the merged
// timeline on demand. Nothing is cached; every call reflects the stores as
// they are right now.
type TimelineService struct {
	tasks  task.Store
	goals  goal.Store
	habits habit.Store
	events event.Store

	habitSvc *HabitService
	cfg      config.TimelineConfig
	log      zerolog.Logger
}

// NewTimelineService creates a new TimelineService.
func NewTimelineService(stores Stores, habits *HabitService, cfg config.TimelineConfig, log zerolog.Logger) *TimelineService {
	return &TimelineService{
		tasks:    stores.Tasks,
		goals:    stores.Goals,
		habits:   stores.Habits,
		events:   stores.Events,
		habitSvc: habits,
		cfg:      cfg,
		log:      log.With().Str("component", "timeline-service").Logger(),
	}
}

// Window returns the habit expansion window for calendar views: the first
// day of the current month through the configured number of months out.
func (s *TimelineService) Window(now time.Time) timeline.Window {
	months := s.cfg.WindowMonths
	if months <= 0 {
		months = timeline.DefaultWindowMonths
	}
	from := dateutil.StartOfMonth(now)
	return timeline.Window{From: from, To: from.AddDate(0, months, 0)}
}

// Materialize loads all four collections and merges them into timeline
// items, expanding habits inside the given window.
func (s *TimelineService) Materialize(ctx context.Context, win timeline.Window) ([]timeline.Item, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	habits, err := s.habits.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	items := timeline.Materialize(tasks, goals, habits, events, win)

	s.log.Debug().
		Int("items", len(items)).
		Time("from", win.From).
		Time("to", win.To).
		Msg("timeline materialized")
	return items, nil
}

// Calendar materializes the timeline over the default calendar window
// anchored at now.
func (s *TimelineService) Calendar(ctx context.Context, now time.Time) ([]timeline.Item, error) {
	return s.Materialize(ctx, s.Window(now))
}

// Upcoming returns the next items starting strictly after now, ascending by
// start, truncated to the configured display count.
func (s *TimelineService) Upcoming(ctx context.Context, now time.Time) ([]timeline.Item, error) {
	items, err := s.Materialize(ctx, s.Window(now))
	if err != nil {
		return nil, err
	}

	limit := s.cfg.UpcomingLimit
	if limit <= 0 {
		limit = timeline.DefaultUpcomingLimit
	}
	return timeline.Upcoming(items, now, limit), nil
}

// ToggleOccurrence resolves a habit occurrence item ID and flips the
// underlying habit's completion for that day. Task and goal items cannot be
// toggled through the timeline.
func (s *TimelineService) ToggleOccurrence(ctx context.Context, itemID string) (habit.Habit, bool, error) {
	kind, sourceID, date, ok := timeline.ParseID(itemID)
	if !ok || kind != timeline.KindHabit {
		return habit.Habit{}, false, fmt.Errorf("item %q is not a habit occurrence", itemID)
	}

	day, err := time.ParseInLocation(time.DateOnly, date, time.UTC)
	if err != nil {
		return habit.Habit{}, false, fmt.Errorf("invalid occurrence date %q: %w", date, err)
	}

	return s.habitSvc.ToggleCompletion(ctx, sourceID, day)
}
