package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"

	"github.com/taskgamer/taskgamer/internal/core/focus"
)

// FocusStore implements focus.Store using a JSON file for the single stats
// record.
type FocusStore struct {
	path string
	flk  *flock.Flock
	mu   sync.RWMutex
	log  zerolog.Logger
}

var _ focus.Store = (*FocusStore)(nil)

// NewFocusStore creates a focus-stats store persisting to
// focus_sessions.json in dataDir.
func NewFocusStore(dataDir string, log zerolog.Logger) *FocusStore {
	path := filepath.Join(dataDir, "focus_sessions.json")
	return &FocusStore{
		path: path,
		flk:  flock.New(path + ".lock"),
		log:  log.With().Str("file", filepath.Base(path)).Logger(),
	}
}

// Get returns the persisted stats, or the zero value when nothing has been
// stored or the stored record is malformed.
func (s *FocusStore) Get(ctx context.Context) (focus.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return focus.Stats{}, nil
		}
		return focus.Stats{}, err
	}

	if len(data) == 0 {
		return focus.Stats{}, nil
	}

	var stats focus.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		s.log.Warn().Err(err).Msg("stored focus stats are malformed, resetting")
		return focus.Stats{}, nil
	}

	return stats, nil
}

// Save persists the stats atomically.
func (s *FocusStore) Save(ctx context.Context, stats focus.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	if err := s.flk.Lock(); err != nil {
		return err
	}
	defer s.flk.Unlock() //nolint:errcheck

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}
