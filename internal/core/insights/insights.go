// Package insights derives summary counters from the entity collections for
// dashboards and exported reports. Every function is a stateless reducer
// over the snapshot passed in; nothing here caches or mutates.
package insights

import (
	"time"

	"github.com/taskgamer/taskgamer/internal/core/focus"
	"github.com/taskgamer/taskgamer/internal/core/goal"
	"github.com/taskgamer/taskgamer/internal/core/habit"
	"github.com/taskgamer/taskgamer/internal/core/task"
	"github.com/taskgamer/taskgamer/pkg/dateutil"
)

// TaskStatusCounts holds task counts bucketed by status.
type TaskStatusCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// CountTasksByStatus buckets tasks by lifecycle status.
func CountTasksByStatus(tasks []task.Task) TaskStatusCounts {
	var c TaskStatusCounts
	for _, t := range tasks {
		switch t.Status {
		case task.StatusPending:
			c.Pending++
		case task.StatusInProgress:
			c.InProgress++
		case task.StatusCompleted:
			c.Completed++
		}
	}
	return c
}

// CountTasksByCategory counts tasks per category.
func CountTasksByCategory(tasks []task.Task) map[string]int {
	counts := make(map[string]int)
	for _, t := range tasks {
		counts[t.Category]++
	}
	return counts
}

// GoalCounts holds goal counters for the goals dashboard.
type GoalCounts struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// CountGoals buckets goals into active and completed.
func CountGoals(goals []goal.Goal) GoalCounts {
	c := GoalCounts{Total: len(goals)}
	for _, g := range goals {
		if g.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}

// GoalSuccessRate returns completed goals over total goals as a 0-100
// percentage, 0 when there are no goals.
func GoalSuccessRate(goals []goal.Goal) float64 {
	if len(goals) == 0 {
		return 0
	}
	completed := 0
	for _, g := range goals {
		if g.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(goals)) * 100
}

// MaxHabitStreak returns the largest current streak across all habits, 0
// when there are none.
func MaxHabitStreak(habits []habit.Habit) int {
	streak := 0
	for _, h := range habits {
		if h.Streak > streak {
			streak = h.Streak
		}
	}
	return streak
}

// OverallCompletionRate returns completed tasks over all tasks as a 0-100
// percentage, 0 when there are no tasks.
func OverallCompletionRate(tasks []task.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(tasks)) * 100
}

// CompletedByWeekday buckets tasks completed during the week containing now
// (Sunday through Saturday) per weekday, reordered Monday-first for the
// weekly productivity chart.
func CompletedByWeekday(tasks []task.Task, now time.Time) [7]int {
	start := dateutil.StartOfDay(now).AddDate(0, 0, -int(now.UTC().Weekday()))
	end := start.AddDate(0, 0, 7)

	var sundayFirst [7]int
	for _, t := range tasks {
		if t.Status != task.StatusCompleted || t.CompletedAt == nil {
			continue
		}
		done := dateutil.StartOfDay(*t.CompletedAt)
		if done.Before(start) || !done.Before(end) {
			continue
		}
		sundayFirst[int(done.Weekday())]++
	}

	var mondayFirst [7]int
	for i := 0; i < 6; i++ {
		mondayFirst[i] = sundayFirst[i+1]
	}
	mondayFirst[6] = sundayFirst[0]
	return mondayFirst
}

// FocusSummary holds the focus-time numbers shown on the dashboard.
type FocusSummary struct {
	TotalMinutes   int     `json:"totalMinutes"`
	TotalSessions  int     `json:"totalSessions"`
	DailySessions  int     `json:"dailySessions"`
	AverageSession float64 `json:"averageSession"`
}

// SummarizeFocus derives the focus summary from the session stats.
func SummarizeFocus(stats focus.Stats) FocusSummary {
	return FocusSummary{
		TotalMinutes:   stats.TotalFocusTime,
		TotalSessions:  stats.TotalSessions,
		DailySessions:  stats.DailySessions,
		AverageSession: stats.AverageSession(),
	}
}
