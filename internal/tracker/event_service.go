package tracker

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taskgamer/taskgamer/internal/core/event"
	"github.com/taskgamer/taskgamer/internal/core/goal"
	"github.com/taskgamer/taskgamer/internal/core/habit"
	"github.com/taskgamer/taskgamer/internal/core/task"
)

// CreatedEntity describes what an event creation actually produced once
// reserved categories have been redirected.
type CreatedEntity struct {
	Kind string `json:"kind"` // task, goal, habit, or event
	ID   string `json:"id"`
}

// EventService wraps event.Store and redirects creations whose category
// names another entity kind into that kind's collection.
type EventService struct {
	events event.Store
	tasks  task.Store
	goals  goal.Store
	habits habit.Store
	log    zerolog.Logger
}

// NewEventService creates a new EventService.
func NewEventService(stores Stores, log zerolog.Logger) *EventService {
	return &EventService{
		events: stores.Events,
		tasks:  stores.Tasks,
		goals:  stores.Goals,
		habits: stores.Habits,
		log:    log.With().Str("component", "event-service").Logger(),
	}
}

// Create stores the event, unless its category is one of the reserved
// entity kinds, in which case the matching entity is created instead and
// no event is stored.
func (s *EventService) Create(ctx context.Context, e event.Event) (CreatedEntity, error) {
	if !event.CategoryReserved(e.Category) {
		if err := s.events.Create(ctx, &e); err != nil {
			return CreatedEntity{}, fmt.Errorf("create event: %w", err)
		}
		s.log.Debug().Str("id", e.ID).Str("title", e.Title).Msg("event created")
		return CreatedEntity{Kind: "event", ID: e.ID}, nil
	}

	switch e.Category {
	case event.CategoryTask:
		t := task.Task{
			Title:       e.Title,
			Description: e.Description,
			Category:    "personal",
			DueDate:     e.Start,
		}
		if err := s.tasks.Create(ctx, &t); err != nil {
			return CreatedEntity{}, fmt.Errorf("redirect event to task: %w", err)
		}
		s.log.Debug().Str("id", t.ID).Msg("event redirected to task")
		return CreatedEntity{Kind: event.CategoryTask, ID: t.ID}, nil

	case event.CategoryGoal:
		g := goal.Goal{
			Title:       e.Title,
			Description: e.Description,
			Category:    "personal",
			Deadline:    e.Start,
		}
		if err := s.goals.Create(ctx, &g); err != nil {
			return CreatedEntity{}, fmt.Errorf("redirect event to goal: %w", err)
		}
		s.log.Debug().Str("id", g.ID).Msg("event redirected to goal")
		return CreatedEntity{Kind: event.CategoryGoal, ID: g.ID}, nil

	case event.CategoryHabit:
		h := habit.Habit{
			Title:       e.Title,
			Description: e.Description,
			Category:    "health",
			Frequency:   habit.FrequencyDaily,
		}
		if err := s.habits.Create(ctx, &h); err != nil {
			return CreatedEntity{}, fmt.Errorf("redirect event to habit: %w", err)
		}
		s.log.Debug().Str("id", h.ID).Msg("event redirected to habit")
		return CreatedEntity{Kind: event.CategoryHabit, ID: h.ID}, nil

	default:
		return CreatedEntity{}, fmt.Errorf("unhandled reserved category %q", e.Category)
	}
}

// Delete removes an event by ID.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Debug().Str("id", id).Msg("event deleted")
	return nil
}

// List returns all events in insertion order.
func (s *EventService) List(ctx context.Context) ([]event.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
