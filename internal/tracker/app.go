// Package tracker wires the entity stores into services that implement the
// productivity tracker's domain operations. Commands consume App instead of
// cherry-picking raw dependencies.
package tracker

import (
	"github.com/rs/zerolog"

	"github.com/taskgamer/taskgamer/internal/core/config"
	"github.com/taskgamer/taskgamer/internal/core/event"
	"github.com/taskgamer/taskgamer/internal/core/focus"
	"github.com/taskgamer/taskgamer/internal/core/goal"
	"github.com/taskgamer/taskgamer/internal/core/habit"
	"github.com/taskgamer/taskgamer/internal/core/task"
)

// Stores bundles the persistence interfaces the services are built from.
type Stores struct {
	Tasks  task.Store
	Goals  goal.Store
	Habits habit.Store
	Events event.Store
	Focus  focus.Store
}

// App is the central entry point for all tracker operations.
type App struct {
	Tasks    *TaskService
	Goals    *GoalService
	Habits   *HabitService
	Events   *EventService
	Focus    *FocusService
	Timeline *TimelineService
	Insights *InsightsService

	Config *config.Config
}

// NewApp constructs an App from explicit dependencies.
func NewApp(cfg *config.Config, stores Stores, log zerolog.Logger) *App {
	tasks := NewTaskService(stores.Tasks, log)
	goals := NewGoalService(stores.Goals, log)
	habits := NewHabitService(stores.Habits, log)

	return &App{
		Tasks:    tasks,
		Goals:    goals,
		Habits:   habits,
		Events:   NewEventService(stores, log),
		Focus:    NewFocusService(stores.Focus, cfg.Timer, log),
		Timeline: NewTimelineService(stores, habits, cfg.Timeline, log),
		Insights: NewInsightsService(stores, log),
		Config:   cfg,
	}
}
