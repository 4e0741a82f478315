package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskgamer/taskgamer/internal/core/goal"
)

func TestParseMilestones(t *testing.T) {
	t.Parallel()

	milestones := ParseMilestones("first step\n\n  second step  \n")

	require.Len(t, milestones, 2)
	assert.Equal(t, "first step", milestones[0].Text)
	assert.Equal(t, "second step", milestones[1].Text)
	assert.NotEmpty(t, milestones[0].ID)
	assert.NotEqual(t, milestones[0].ID, milestones[1].ID)
	assert.False(t, milestones[0].Completed)

	assert.Empty(t, ParseMilestones(""))
}

func TestGoalService_CreateDerivesProgress(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	g, err := app.Goals.Create(ctx, goal.Goal{
		Title:      "Marathon",
		Milestones: ParseMilestones("sign up\ntrain"),
	})
	require.NoError(t, err)

	assert.Equal(t, goal.StatusNotStarted, g.Status)
	assert.Zero(t, g.Progress)
	assert.False(t, g.Completed)
}

func TestGoalService_ToggleMilestoneProgress(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	g, err := app.Goals.Create(ctx, goal.Goal{
		Title:      "Marathon",
		Milestones: ParseMilestones("sign up\ntrain"),
	})
	require.NoError(t, err)

	g, err = app.Goals.ToggleMilestone(ctx, g.ID, g.Milestones[0].ID)
	require.NoError(t, err)

	assert.InDelta(t, 50, g.Progress, 0.001)
	assert.False(t, g.Completed)

	// Toggling back off drops progress again.
	g, err = app.Goals.ToggleMilestone(ctx, g.ID, g.Milestones[0].ID)
	require.NoError(t, err)
	assert.Zero(t, g.Progress)
}

func TestGoalService_CompletingAllMilestonesCompletesGoal(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	g, err := app.Goals.Create(ctx, goal.Goal{
		Title:      "Marathon",
		Milestones: ParseMilestones("sign up\ntrain"),
	})
	require.NoError(t, err)

	g, err = app.Goals.ToggleMilestone(ctx, g.ID, g.Milestones[0].ID)
	require.NoError(t, err)
	g, err = app.Goals.ToggleMilestone(ctx, g.ID, g.Milestones[1].ID)
	require.NoError(t, err)

	assert.InDelta(t, 100, g.Progress, 0.001)
	assert.Equal(t, goal.StatusCompleted, g.Status)
	assert.True(t, g.Completed)
	require.NotNil(t, g.CompletedAt)
	assert.WithinDuration(t, time.Now(), *g.CompletedAt, 5*time.Second)
}

func TestGoalService_ToggleMilestoneNotFound(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	g, err := app.Goals.Create(ctx, goal.Goal{Title: "g", Milestones: ParseMilestones("one")})
	require.NoError(t, err)

	_, err = app.Goals.ToggleMilestone(ctx, g.ID, "missing")
	assert.ErrorIs(t, err, goal.ErrMilestoneNotFound)
}

func TestGoalService_UpdateStatus(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	g, err := app.Goals.Create(ctx, goal.Goal{Title: "g"})
	require.NoError(t, err)

	g, err = app.Goals.MarkInProgress(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.StatusInProgress, g.Status)
	assert.False(t, g.Completed)

	g, err = app.Goals.UpdateStatus(ctx, g.ID, goal.StatusCompleted)
	require.NoError(t, err)
	assert.True(t, g.Completed)
	require.NotNil(t, g.CompletedAt)

	// Reopening clears the completion state.
	g, err = app.Goals.UpdateStatus(ctx, g.ID, goal.StatusInProgress)
	require.NoError(t, err)
	assert.False(t, g.Completed)
	assert.Nil(t, g.CompletedAt)
}

func TestGoalService_EditReplacesMilestones(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	g, err := app.Goals.Create(ctx, goal.Goal{Title: "g", Milestones: ParseMilestones("one")})
	require.NoError(t, err)

	g, err = app.Goals.ToggleMilestone(ctx, g.ID, g.Milestones[0].ID)
	require.NoError(t, err)
	require.InDelta(t, 100, g.Progress, 0.001)

	g, err = app.Goals.Edit(ctx, g.ID, GoalEdit{Milestones: ParseMilestones("a\nb\nc")})
	require.NoError(t, err)

	assert.Len(t, g.Milestones, 3)
	assert.Zero(t, g.Progress)
}

func TestGoalService_ListOrdersIncompleteFirst(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	done, err := app.Goals.Create(ctx, goal.Goal{Title: "done", Deadline: day(2026, time.September, 1)})
	require.NoError(t, err)
	open, err := app.Goals.Create(ctx, goal.Goal{Title: "open", Deadline: day(2026, time.December, 1)})
	require.NoError(t, err)

	_, err = app.Goals.UpdateStatus(ctx, done.ID, goal.StatusCompleted)
	require.NoError(t, err)

	goals, err := app.Goals.List(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, open.ID, goals[0].ID)
	assert.Equal(t, done.ID, goals[1].ID)
}
