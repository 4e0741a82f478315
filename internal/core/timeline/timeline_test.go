package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskgamer/taskgamer/internal/core/event"
	"github.com/taskgamer/taskgamer/internal/core/goal"
	"github.com/taskgamer/taskgamer/internal/core/habit"
	"github.com/taskgamer/taskgamer/internal/core/task"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func TestMaterialize_MergesAllKinds(t *testing.T) {
	t.Parallel()

	win := Window{From: day(2026, time.August, 1), To: day(2026, time.August, 8)}

	items := Materialize(
		[]task.Task{{ID: "t1", Title: "Ship release", Status: task.StatusPending, DueDate: day(2026, time.August, 3)}},
		[]goal.Goal{{ID: "g1", Title: "Marathon", Status: goal.StatusInProgress, Deadline: day(2026, time.August, 20)}},
		[]habit.Habit{{ID: "h1", Title: "Run", Frequency: habit.FrequencyDaily}},
		[]event.Event{{ID: "e1", Title: "Dentist", Category: "health", Start: day(2026, time.August, 4)}},
		win,
	)

	// 1 task + 1 goal + 7 daily occurrences + 1 event
	require.Len(t, items, 10)

	byKind := map[Kind]int{}
	for _, it := range items {
		byKind[it.Kind]++
	}
	assert.Equal(t, 1, byKind[KindTask])
	assert.Equal(t, 1, byKind[KindGoal])
	assert.Equal(t, 7, byKind[KindHabit])
	assert.Equal(t, 1, byKind[KindEvent])
}

func TestMaterialize_IDNamespacing(t *testing.T) {
	t.Parallel()

	win := Window{From: day(2026, time.August, 1), To: day(2026, time.August, 2)}

	items := Materialize(
		[]task.Task{{ID: "t1", Status: task.StatusPending}},
		[]goal.Goal{{ID: "g1", Status: goal.StatusNotStarted}},
		[]habit.Habit{{ID: "h1", Frequency: habit.FrequencyDaily}},
		[]event.Event{{ID: "e1", Category: "work"}},
		win,
	)

	ids := make(map[string]bool, len(items))
	for _, it := range items {
		ids[it.ID] = true
	}

	assert.True(t, ids["task-t1"])
	assert.True(t, ids["goal-g1"])
	assert.True(t, ids["habit-h1-2026-08-01"])
	// Events keep their raw ID.
	assert.True(t, ids["e1"])
}

func TestMaterialize_TasksOutsideWindowKept(t *testing.T) {
	t.Parallel()

	// The window bounds habit expansion only; tasks, goals, and events pass
	// through regardless of their dates.
	win := Window{From: day(2026, time.August, 1), To: day(2026, time.September, 1)}

	items := Materialize(
		[]task.Task{{ID: "t1", Status: task.StatusPending, DueDate: day(2030, time.January, 1)}},
		nil, nil,
		[]event.Event{{ID: "e1", Start: day(1999, time.January, 1)}},
		win,
	)

	require.Len(t, items, 2)
}

func TestMaterialize_HabitMarkers(t *testing.T) {
	t.Parallel()

	win := Window{From: day(2026, time.August, 1), To: day(2026, time.August, 3)}

	items := Materialize(nil, nil, []habit.Habit{{
		ID:             "h1",
		Title:          "Stretch",
		Frequency:      habit.FrequencyDaily,
		CompletedDates: []string{"2026-08-01"},
	}}, nil, win)

	require.Len(t, items, 2)
	assert.Equal(t, "✅ Stretch", items[0].Title)
	assert.Equal(t, StateCompleted, items[0].State)
	assert.Equal(t, "habit-completed", items[0].Class)
	assert.Equal(t, "🔴 Stretch", items[1].Title)
	assert.Equal(t, StatePending, items[1].State)
	assert.Equal(t, "habit-pending", items[1].Class)
}

func TestMaterialize_TaskStates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status    task.Status
		wantState State
		wantClass string
	}{
		{task.StatusPending, StatePending, "task-default"},
		{task.StatusInProgress, StateInProgress, "task-in-progress"},
		{task.StatusCompleted, StateCompleted, "task-completed"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()

			items := Materialize([]task.Task{{ID: "t1", Status: tt.status}}, nil, nil, nil, Window{})
			require.Len(t, items, 1)
			assert.Equal(t, tt.wantState, items[0].State)
			assert.Equal(t, tt.wantClass, items[0].Class)
		})
	}
}

func TestMaterialize_EventCategoryDefault(t *testing.T) {
	t.Parallel()

	items := Materialize(nil, nil, nil, []event.Event{{ID: "e1"}}, Window{})

	require.Len(t, items, 1)
	assert.Equal(t, "other", items[0].Category)
	assert.Equal(t, "event-other", items[0].Class)
}

func TestUpcoming(t *testing.T) {
	t.Parallel()

	now := day(2026, time.August, 10)
	items := []Item{
		{ID: "past", Start: day(2026, time.August, 1)},
		{ID: "today", Start: now},
		{ID: "c", Start: day(2026, time.August, 20)},
		{ID: "a", Start: day(2026, time.August, 11)},
		{ID: "b", Start: day(2026, time.August, 15)},
	}

	got := Upcoming(items, now, 5)

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestUpcoming_Truncates(t *testing.T) {
	t.Parallel()

	now := day(2026, time.August, 1)
	var items []Item
	for i := 2; i <= 20; i++ {
		items = append(items, Item{ID: string(rune('a' + i)), Start: day(2026, time.August, i)})
	}

	got := Upcoming(items, now, DefaultUpcomingLimit)
	assert.Len(t, got, DefaultUpcomingLimit)
}

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		wantKind   Kind
		wantSource string
		wantDate   string
		wantOK     bool
	}{
		{
			name:       "task id",
			id:         "task-abc123",
			wantKind:   KindTask,
			wantSource: "abc123",
			wantOK:     true,
		},
		{
			name:       "goal id",
			id:         "goal-xyz",
			wantKind:   KindGoal,
			wantSource: "xyz",
			wantOK:     true,
		},
		{
			name:       "habit occurrence id",
			id:         "habit-h1-2026-08-28",
			wantKind:   KindHabit,
			wantSource: "h1",
			wantDate:   "2026-08-28",
			wantOK:     true,
		},
		{
			name:       "habit id with dashes in entity id",
			id:         "habit-a-b-c-2026-01-02",
			wantKind:   KindHabit,
			wantSource: "a-b-c",
			wantDate:   "2026-01-02",
			wantOK:     true,
		},
		{
			name:   "habit id missing date",
			id:     "habit-h1",
			wantOK: false,
		},
		{
			name:   "raw event id",
			id:     "e1",
			wantOK: false,
		},
		{
			name:   "empty",
			id:     "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			kind, source, date, ok := ParseID(tt.id)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantSource, source)
			assert.Equal(t, tt.wantDate, date)
		})
	}
}

func TestDefaultWindow(t *testing.T) {
	t.Parallel()

	win := DefaultWindow(day(2026, time.August, 28))

	assert.Equal(t, day(2026, time.August, 1), win.From)
	assert.Equal(t, day(2026, time.November, 1), win.To)
}

func TestMaterialize_WeeklyHabitInWindow(t *testing.T) {
	t.Parallel()

	win := Window{From: day(2026, time.August, 1), To: day(2026, time.August, 15)}

	items := Materialize(nil, nil, []habit.Habit{{
		ID:          "h1",
		Title:       "Weekly review",
		Frequency:   habit.FrequencyWeekly,
		ReminderDay: intPtr(5),
	}}, nil, win)

	// Fridays: Aug 7 and Aug 14.
	require.Len(t, items, 2)
	assert.Equal(t, "2026-08-07", items[0].Date)
	assert.Equal(t, "2026-08-14", items[1].Date)
}
