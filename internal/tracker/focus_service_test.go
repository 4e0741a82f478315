package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskgamer/taskgamer/internal/core/focus"
)

func TestFocusService_StartStampsMarker(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Focus.Start(ctx))

	stats, err := app.Focus.Stats(ctx)
	require.NoError(t, err)
	require.NotNil(t, stats.LastSessionTimestamp)
	assert.WithinDuration(t, time.Now(), *stats.LastSessionTimestamp, 5*time.Second)
}

func TestFocusService_TickRecordsCompletedSession(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Focus.Start(ctx))

	work := time.Duration(app.Focus.Timer().WorkMinutes()) * time.Minute
	finished, err := app.Focus.Tick(ctx, work)
	require.NoError(t, err)
	assert.Equal(t, focus.ModeFocus, finished)

	stats, err := app.Focus.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalSessions)
	assert.Equal(t, app.Focus.Timer().WorkMinutes(), stats.TotalFocusTime)
	assert.Equal(t, 1, stats.DailySessions)
	// Recording clears the in-progress marker.
	assert.Nil(t, stats.LastSessionTimestamp)

	// The timer rolled over into break mode.
	assert.Equal(t, focus.ModeBreak, app.Focus.Timer().Mode())
	assert.Equal(t, focus.StateIdle, app.Focus.Timer().State())
}

func TestFocusService_BreakCompletionNotRecorded(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	// Complete a work session to enter break mode.
	require.NoError(t, app.Focus.Start(ctx))
	work := time.Duration(app.Focus.Timer().WorkMinutes()) * time.Minute
	_, err := app.Focus.Tick(ctx, work)
	require.NoError(t, err)

	require.NoError(t, app.Focus.Start(ctx))
	brk := time.Duration(app.Focus.Timer().BreakMinutes()) * time.Minute
	finished, err := app.Focus.Tick(ctx, brk)
	require.NoError(t, err)
	assert.Equal(t, focus.ModeBreak, finished)

	stats, err := app.Focus.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalSessions)
}

func TestFocusService_TickWhileIdle(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	finished, err := app.Focus.Tick(ctx, time.Hour)
	require.NoError(t, err)
	assert.Empty(t, finished)

	stats, err := app.Focus.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalSessions)
}

func TestFocusService_ResetClearsMarker(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Focus.Start(ctx))
	require.NoError(t, app.Focus.Reset(ctx))

	stats, err := app.Focus.Stats(ctx)
	require.NoError(t, err)
	assert.Nil(t, stats.LastSessionTimestamp)
	assert.Equal(t, focus.StateIdle, app.Focus.Timer().State())
}

func TestFocusService_RunCancelled(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := app.Focus.Run(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
