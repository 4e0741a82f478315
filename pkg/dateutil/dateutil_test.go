package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	t.Parallel()

	utc := time.Date(2026, time.August, 28, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-28", Key(utc))

	// Local times convert to UTC before the day is taken.
	offset := time.FixedZone("UTC+10", 10*60*60)
	late := time.Date(2026, time.August, 29, 2, 0, 0, 0, offset)
	assert.Equal(t, "2026-08-28", Key(late))
}

func TestStartOfDay(t *testing.T) {
	t.Parallel()

	got := StartOfDay(time.Date(2026, time.August, 28, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC), got)
}

func TestStartOfMonth(t *testing.T) {
	t.Parallel()

	got := StartOfMonth(time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestSameDay(t *testing.T) {
	t.Parallel()

	a := time.Date(2026, time.August, 28, 1, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.August, 28, 23, 0, 0, 0, time.UTC)
	c := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}

func TestLastNDays(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 28, 18, 0, 0, 0, time.UTC)
	days := LastNDays(now, 7)

	require.Len(t, days, 7)
	assert.Equal(t, time.Date(2026, time.August, 22, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC), days[6])

	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].AddDate(0, 0, 1), days[i])
	}
}
