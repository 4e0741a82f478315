// Package jsonfile implements the entity Store interfaces using one JSON
// file per collection. Every mutation rewrites the whole collection
// atomically (marshal, write tmp, rename) under a process file lock, so a
// mutation either persists completely before the call returns or the caller
// sees the error.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
)

// collection handles load/save for a single JSON-array-backed collection.
// A missing file is an empty collection; a file that fails to parse is
// logged and treated as empty rather than surfaced as a fatal error, per
// the malformed-stored-data recovery policy.
type collection[T any] struct {
	path string
	flk  *flock.Flock
	mu   sync.RWMutex
	log  zerolog.Logger
}

func newCollection[T any](path string, log zerolog.Logger) *collection[T] {
	return &collection[T]{
		path: path,
		flk:  flock.New(path + ".lock"),
		log:  log.With().Str("file", filepath.Base(path)).Logger(),
	}
}

// load reads the collection from disk.
func (c *collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	if len(data) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.log.Warn().Err(err).Msg("stored collection is malformed, resetting to empty")
		return nil, nil
	}

	return items, nil
}

// save writes the collection to disk atomically, holding the file lock for
// the duration of the write so concurrent processes cannot interleave.
func (c *collection[T]) save(items []T) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}

	if err := c.flk.Lock(); err != nil {
		return err
	}
	defer c.flk.Unlock() //nolint:errcheck

	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, c.path)
}
