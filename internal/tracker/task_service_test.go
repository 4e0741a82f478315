package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskgamer/taskgamer/internal/core/task"
)

func TestTaskService_CreateAndGet(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	created, err := app.Tasks.Create(ctx, task.Task{Title: "Ship release", Category: "work"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, task.StatusPending, created.Status)

	got, err := app.Tasks.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestTaskService_UpdateStatusStampsCompletedAt(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	created, err := app.Tasks.Create(ctx, task.Task{Title: "t"})
	require.NoError(t, err)

	done, err := app.Tasks.UpdateStatus(ctx, created.ID, task.StatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	assert.WithinDuration(t, time.Now(), *done.CompletedAt, 5*time.Second)

	// Leaving completed clears the timestamp.
	reopened, err := app.Tasks.UpdateStatus(ctx, created.ID, task.StatusInProgress)
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedAt)
}

func TestTaskService_UpdateStatusInvalid(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	created, err := app.Tasks.Create(ctx, task.Task{Title: "t"})
	require.NoError(t, err)

	_, err = app.Tasks.UpdateStatus(ctx, created.ID, "done")
	assert.Error(t, err)
}

func TestTaskService_ListFilters(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	seed := []task.Task{
		{Title: "Write report", Category: "work"},
		{Title: "Buy groceries", Category: "personal"},
		{Title: "Review code", Category: "work"},
	}
	for i := range seed {
		created, err := app.Tasks.Create(ctx, seed[i])
		require.NoError(t, err)
		seed[i] = created
	}
	_, err := app.Tasks.UpdateStatus(ctx, seed[2].ID, task.StatusCompleted)
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter TaskFilter
		want   int
	}{
		{name: "no filter", filter: TaskFilter{}, want: 3},
		{name: "by status", filter: TaskFilter{Status: task.StatusPending}, want: 2},
		{name: "by category glob", filter: TaskFilter{Category: "work"}, want: 2},
		{name: "by search", filter: TaskFilter{Search: "report"}, want: 1},
		{name: "search is case-insensitive", filter: TaskFilter{Search: "REVIEW"}, want: 1},
		{name: "combined", filter: TaskFilter{Category: "work", Status: task.StatusCompleted}, want: 1},
		{name: "no matches", filter: TaskFilter{Search: "nothing here"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := app.Tasks.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestTaskService_ListOrdering(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	early := day(2026, time.September, 1)
	late := day(2026, time.October, 1)

	a, err := app.Tasks.Create(ctx, task.Task{Title: "done", DueDate: early})
	require.NoError(t, err)
	b, err := app.Tasks.Create(ctx, task.Task{Title: "pending late", DueDate: late})
	require.NoError(t, err)
	c, err := app.Tasks.Create(ctx, task.Task{Title: "pending early", DueDate: early})
	require.NoError(t, err)

	_, err = app.Tasks.UpdateStatus(ctx, a.ID, task.StatusCompleted)
	require.NoError(t, err)

	got, err := app.Tasks.List(ctx, TaskFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Pending before completed, due date ascending within a status.
	assert.Equal(t, c.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
	assert.Equal(t, a.ID, got[2].ID)
}

func TestTaskService_Edit(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	created, err := app.Tasks.Create(ctx, task.Task{Title: "old", Category: "work"})
	require.NoError(t, err)

	title := "new"
	got, err := app.Tasks.Edit(ctx, created.ID, TaskEdit{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "new", got.Title)
	// Untouched fields survive.
	assert.Equal(t, "work", got.Category)
}

func TestTaskService_Delete(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	created, err := app.Tasks.Create(ctx, task.Task{Title: "t"})
	require.NoError(t, err)

	require.NoError(t, app.Tasks.Delete(ctx, created.ID))

	_, err = app.Tasks.Get(ctx, created.ID)
	assert.ErrorIs(t, err, task.ErrNotFound)
}
