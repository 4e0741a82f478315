package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskgamer/taskgamer/internal/core/goal"
	"github.com/taskgamer/taskgamer/internal/core/habit"
	"github.com/taskgamer/taskgamer/internal/core/task"
)

func TestInsightsService_Dashboard(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()
	now := time.Now()

	created, err := app.Tasks.Create(ctx, task.Task{Title: "t1", Category: "work"})
	require.NoError(t, err)
	_, err = app.Tasks.UpdateStatus(ctx, created.ID, task.StatusCompleted)
	require.NoError(t, err)
	_, err = app.Tasks.Create(ctx, task.Task{Title: "t2", Category: "personal"})
	require.NoError(t, err)

	g, err := app.Goals.Create(ctx, goal.Goal{Title: "g1"})
	require.NoError(t, err)
	_, err = app.Goals.UpdateStatus(ctx, g.ID, goal.StatusCompleted)
	require.NoError(t, err)

	h, err := app.Habits.Create(ctx, habit.Habit{Title: "h1"})
	require.NoError(t, err)
	_, err = app.Habits.SetStreak(ctx, h.ID, 4)
	require.NoError(t, err)

	dash, err := app.Insights.Dashboard(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 1, dash.Tasks.Completed)
	assert.Equal(t, 1, dash.Tasks.Pending)
	assert.Equal(t, map[string]int{"work": 1, "personal": 1}, dash.TasksByCategory)
	assert.Equal(t, 1, dash.Goals.Completed)
	assert.InDelta(t, 100, dash.GoalSuccessRate, 0.001)
	assert.Equal(t, 4, dash.MaxHabitStreak)

	// One of two tasks created today is completed (task component 20), the
	// goal completed today with no deadline due earns the full goal weight.
	assert.InDelta(t, 30, dash.TodayScore, 0.001)
}

func TestInsightsService_Score(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()
	now := time.Now()

	created, err := app.Tasks.Create(ctx, task.Task{Title: "t"})
	require.NoError(t, err)
	_, err = app.Tasks.UpdateStatus(ctx, created.ID, task.StatusCompleted)
	require.NoError(t, err)

	score, err := app.Insights.Score(ctx, now)
	require.NoError(t, err)
	assert.InDelta(t, 40, score, 0.001)

	// Yesterday had no activity.
	score, err = app.Insights.Score(ctx, now.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestInsightsService_Trends(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()
	now := time.Now()

	created, err := app.Tasks.Create(ctx, task.Task{Title: "t"})
	require.NoError(t, err)
	_, err = app.Tasks.UpdateStatus(ctx, created.ID, task.StatusCompleted)
	require.NoError(t, err)

	scores, err := app.Insights.ScoreTrend(ctx, now)
	require.NoError(t, err)
	require.Len(t, scores, TrendDays)
	assert.InDelta(t, 40, scores[TrendDays-1].Value, 0.001)
	assert.Zero(t, scores[0].Value)

	completion, err := app.Insights.CompletionTrend(ctx, now)
	require.NoError(t, err)
	require.Len(t, completion, TrendDays)
	assert.InDelta(t, 100, completion[TrendDays-1].Value, 0.001)

	// Dates are contiguous and oldest first.
	for i := 1; i < len(scores); i++ {
		assert.Less(t, scores[i-1].Date, scores[i].Date)
	}
}

func TestInsightsService_BuildReport(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()
	now := time.Now()

	created, err := app.Tasks.Create(ctx, task.Task{Title: "t1", Category: "work"})
	require.NoError(t, err)
	_, err = app.Tasks.UpdateStatus(ctx, created.ID, task.StatusCompleted)
	require.NoError(t, err)
	_, err = app.Tasks.Create(ctx, task.Task{Title: "t2", Category: "work"})
	require.NoError(t, err)

	// Record one completed focus session through the timer.
	require.NoError(t, app.Focus.Start(ctx))
	work := time.Duration(app.Focus.Timer().WorkMinutes()) * time.Minute
	_, err = app.Focus.Tick(ctx, work)
	require.NoError(t, err)

	report, err := app.Insights.BuildReport(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 1, report.TasksCompleted)
	assert.Equal(t, 2, report.TasksTotal)
	assert.InDelta(t, 50, report.CompletionRate, 0.001)
	assert.Equal(t, map[string]int{"work": 2}, report.TasksByCategory)
	assert.Equal(t, 1, report.FocusSessions)
	assert.Equal(t, app.Focus.Timer().WorkMinutes(), report.FocusMinutes)
	assert.InDelta(t, float64(report.FocusMinutes), report.AverageFocusSession, 0.001)
	require.Len(t, report.ScoreTrend, TrendDays)
	assert.True(t, report.GeneratedAt.Equal(now))
}
