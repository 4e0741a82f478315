package tracker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskgamer/taskgamer/internal/core/event"
	"github.com/taskgamer/taskgamer/internal/core/goal"
	"github.com/taskgamer/taskgamer/internal/core/habit"
	"github.com/taskgamer/taskgamer/internal/core/task"
	"github.com/taskgamer/taskgamer/internal/core/timeline"
)

func TestTimelineService_Window(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	win := app.Timeline.Window(day(2026, time.August, 28))

	assert.Equal(t, day(2026, time.August, 1), win.From)
	assert.Equal(t, day(2026, time.November, 1), win.To)
}

func TestTimelineService_Materialize(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	_, err := app.Tasks.Create(ctx, task.Task{Title: "t", DueDate: day(2026, time.September, 1)})
	require.NoError(t, err)
	_, err = app.Goals.Create(ctx, goal.Goal{Title: "g", Deadline: day(2026, time.October, 1)})
	require.NoError(t, err)
	h, err := app.Habits.Create(ctx, habit.Habit{Title: "h", Frequency: habit.FrequencyDaily})
	require.NoError(t, err)
	_, err = app.Events.Create(ctx, event.Event{Title: "e", Start: day(2026, time.September, 3)})
	require.NoError(t, err)

	win := timeline.Window{From: day(2026, time.September, 1), To: day(2026, time.September, 4)}
	items, err := app.Timeline.Materialize(ctx, win)
	require.NoError(t, err)

	// 1 task + 1 goal + 3 habit occurrences + 1 event.
	require.Len(t, items, 6)

	habitItems := 0
	for _, it := range items {
		if it.Kind == timeline.KindHabit {
			habitItems++
			assert.Equal(t, h.ID, it.SourceID)
		}
	}
	assert.Equal(t, 3, habitItems)
}

func TestTimelineService_Upcoming(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	now := time.Now()

	// Seven future tasks; the configured limit keeps five.
	for i := 1; i <= 7; i++ {
		_, err := app.Tasks.Create(ctx, task.Task{
			Title:   fmt.Sprintf("t%d", i),
			DueDate: now.AddDate(0, 0, i),
		})
		require.NoError(t, err)
	}
	_, err := app.Tasks.Create(ctx, task.Task{Title: "past", DueDate: now.AddDate(0, 0, -1)})
	require.NoError(t, err)

	items, err := app.Timeline.Upcoming(ctx, now)
	require.NoError(t, err)

	require.Len(t, items, timeline.DefaultUpcomingLimit)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].Start.Before(items[i-1].Start))
	}
}

func TestTimelineService_ToggleOccurrence(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	h, err := app.Habits.Create(ctx, habit.Habit{Title: "Stretch", Frequency: habit.FrequencyDaily})
	require.NoError(t, err)

	itemID := fmt.Sprintf("habit-%s-2026-08-28", h.ID)

	got, completed, err := app.Timeline.ToggleOccurrence(ctx, itemID)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Contains(t, got.CompletedDates, "2026-08-28")

	_, completed, err = app.Timeline.ToggleOccurrence(ctx, itemID)
	require.NoError(t, err)
	assert.False(t, completed)
}

func TestTimelineService_ToggleOccurrenceRejectsNonHabit(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	_, _, err := app.Timeline.ToggleOccurrence(ctx, "task-abc")
	assert.Error(t, err)

	_, _, err = app.Timeline.ToggleOccurrence(ctx, "garbage")
	assert.Error(t, err)
}
