package tracker

import (
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskgamer/taskgamer/internal/core/config"
	"github.com/taskgamer/taskgamer/internal/store/jsonfile"
)

// newTestApp builds an App over real JSON file stores in a temp directory.
func newTestApp(t *testing.T) *App {
	t.Helper()

	dir := t.TempDir()
	log := zerolog.New(os.Stderr).Level(zerolog.Disabled)

	cfg := config.DefaultConfig()
	cfg.DataDir = dir

	stores := Stores{
		Tasks:  jsonfile.NewTaskStore(dir, log),
		Goals:  jsonfile.NewGoalStore(dir, log),
		Habits: jsonfile.NewHabitStore(dir, log),
		Events: jsonfile.NewEventStore(dir, log),
		Focus:  jsonfile.NewFocusStore(dir, log),
	}

	return NewApp(&cfg, stores, log)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
