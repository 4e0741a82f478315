// Package scoring computes the composite daily productivity score from
// weighted task, focus, habit, and goal signals. Everything here is a pure
// function over an entity snapshot; nothing is mutated.
package scoring

import (
	"time"

	"github.com/taskgamer/taskgamer/internal/core/focus"
	"github.com/taskgamer/taskgamer/internal/core/goal"
	"github.com/taskgamer/taskgamer/internal/core/habit"
	"github.com/taskgamer/taskgamer/internal/core/task"
	"github.com/taskgamer/taskgamer/pkg/dateutil"
)

// Component weights. Each signal is independently capped at its weight
// before summing; the sum is clamped at 100 and never re-normalized.
const (
	taskWeight  = 40
	focusWeight = 30
	habitWeight = 20
	goalWeight  = 10

	// focusTargetMinutes is the cumulative focus time that earns the full
	// focus component.
	focusTargetMinutes = 240
)

// DailyScore returns the 0-100 composite productivity score for the
// calendar day containing date.
//
// The focus component is computed from the cumulative focus-time total, not
// the given day's focus minutes, so that component is identical across
// days. Preserved as-is; see the design notes before changing.
func DailyScore(tasks []task.Task, goals []goal.Goal, habits []habit.Habit, stats focus.Stats, date time.Time) float64 {
	score := taskComponent(tasks, date) +
		focusComponent(stats) +
		habitComponent(habits, date) +
		goalComponent(goals, date)
	return min(score, 100)
}

// ScoreSeries returns one DailyScore per date, in order. Feeds the
// productivity trend chart.
func ScoreSeries(tasks []task.Task, goals []goal.Goal, habits []habit.Habit, stats focus.Stats, dates []time.Time) []float64 {
	scores := make([]float64, len(dates))
	for i, d := range dates {
		scores[i] = DailyScore(tasks, goals, habits, stats, d)
	}
	return scores
}

// TaskCompletionRate returns the percentage of tasks created on the given
// day that are completed, 0 when none were created that day.
func TaskCompletionRate(tasks []task.Task, date time.Time) float64 {
	created, completed := tasksCreatedOn(tasks, date)
	if created == 0 {
		return 0
	}
	return float64(completed) / float64(created) * 100
}

// CompletionRateSeries returns one TaskCompletionRate per date, in order.
func CompletionRateSeries(tasks []task.Task, dates []time.Time) []float64 {
	rates := make([]float64, len(dates))
	for i, d := range dates {
		rates[i] = TaskCompletionRate(tasks, d)
	}
	return rates
}

func taskComponent(tasks []task.Task, date time.Time) float64 {
	created, completed := tasksCreatedOn(tasks, date)
	if created == 0 {
		return 0
	}
	return float64(completed) / float64(created) * taskWeight
}

func focusComponent(stats focus.Stats) float64 {
	return min(float64(stats.TotalFocusTime)/focusTargetMinutes, 1) * focusWeight
}

func habitComponent(habits []habit.Habit, date time.Time) float64 {
	done := 0
	for _, h := range habits {
		if h.CompletedOn(date) {
			done++
		}
	}
	return float64(done) / float64(max(len(habits), 1)) * habitWeight
}

func goalComponent(goals []goal.Goal, date time.Time) float64 {
	completedOn := 0
	dueOn := 0
	for _, g := range goals {
		if g.Completed && g.CompletedAt != nil && dateutil.SameDay(*g.CompletedAt, date) {
			completedOn++
		}
		if dateutil.SameDay(g.Deadline, date) {
			dueOn++
		}
	}
	return float64(completedOn) / float64(max(dueOn, 1)) * goalWeight
}

func tasksCreatedOn(tasks []task.Task, date time.Time) (created, completed int) {
	for _, t := range tasks {
		if !dateutil.SameDay(t.CreatedAt, date) {
			continue
		}
		created++
		if t.Status == task.StatusCompleted {
			completed++
		}
	}
	return created, completed
}
