package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskgamer/taskgamer/internal/core/config"
	"github.com/taskgamer/taskgamer/internal/core/focus"
)

// FocusService owns the pomodoro timer and folds completed work sessions
// into the persisted focus stats.
type FocusService struct {
	store focus.Store
	timer *focus.Timer
	log   zerolog.Logger
}

// NewFocusService creates a new FocusService with an idle timer.
func NewFocusService(store focus.Store, cfg config.TimerConfig, log zerolog.Logger) *FocusService {
	return &FocusService{
		store: store,
		timer: focus.NewTimer(cfg.WorkMinutes, cfg.BreakMinutes),
		log:   log.With().Str("component", "focus-service").Logger(),
	}
}

// Timer exposes the underlying state machine for display purposes.
func (s *FocusService) Timer() *focus.Timer { return s.timer }

// Start begins or resumes the countdown. When a fresh work session starts,
// the in-progress marker is stamped into the persisted stats so an
// interrupted session is detectable.
func (s *FocusService) Start(ctx context.Context) error {
	startingFresh := s.timer.State() == focus.StateIdle && s.timer.Mode() == focus.ModeFocus

	if !s.timer.Start() {
		return nil
	}

	if startingFresh {
		stats, err := s.store.Get(ctx)
		if err != nil {
			return fmt.Errorf("load focus stats: %w", err)
		}
		if stats.LastSessionTimestamp == nil {
			now := time.Now().UTC()
			stats.LastSessionTimestamp = &now
			if err := s.store.Save(ctx, stats); err != nil {
				return fmt.Errorf("save focus stats: %w", err)
			}
		}
	}

	s.log.Debug().Str("mode", string(s.timer.Mode())).Msg("timer started")
	return nil
}

// Pause suspends a running countdown. Safe to call in any state.
func (s *FocusService) Pause() {
	if s.timer.Pause() {
		s.log.Debug().Msg("timer paused")
	}
}

// Reset returns the timer to idle focus mode and clears the in-progress
// marker. Always safe to call.
func (s *FocusService) Reset(ctx context.Context) error {
	s.timer.Reset()

	stats, err := s.store.Get(ctx)
	if err != nil {
		return fmt.Errorf("load focus stats: %w", err)
	}
	if stats.LastSessionTimestamp != nil {
		stats.LastSessionTimestamp = nil
		if err := s.store.Save(ctx, stats); err != nil {
			return fmt.Errorf("save focus stats: %w", err)
		}
	}

	s.log.Debug().Msg("timer reset")
	return nil
}

// Tick advances the countdown by d. When a work session completes it is
// recorded into the persisted stats before Tick returns, so the caller can
// rely on the counters being durable. The returned mode reports which
// session kind finished, if any.
func (s *FocusService) Tick(ctx context.Context, d time.Duration) (focus.Mode, error) {
	workMinutes := s.timer.WorkMinutes()

	completed, finished := s.timer.Advance(d)
	if !completed {
		return "", nil
	}

	if finished == focus.ModeFocus {
		stats, err := s.store.Get(ctx)
		if err != nil {
			return finished, fmt.Errorf("load focus stats: %w", err)
		}

		stats.Record(workMinutes, time.Now())

		if err := s.store.Save(ctx, stats); err != nil {
			return finished, fmt.Errorf("save focus stats: %w", err)
		}

		s.log.Info().
			Int("minutes", workMinutes).
			Int("daily_sessions", stats.DailySessions).
			Msg("focus session recorded")
	}

	return finished, nil
}

// Run drives the countdown with a one-second scheduler until a session
// completes or the context is cancelled. onTick, if non-nil, is invoked
// after every tick with the current remaining time.
func (s *FocusService) Run(ctx context.Context, onTick func(remaining time.Duration, mode focus.Mode)) (focus.Mode, error) {
	if err := s.Start(ctx); err != nil {
		return "", err
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.timer.Pause()
			return "", ctx.Err()
		case <-ticker.C:
			finished, err := s.Tick(ctx, time.Second)
			if err != nil {
				return finished, err
			}
			if onTick != nil {
				onTick(s.timer.Remaining(), s.timer.Mode())
			}
			if finished != "" {
				return finished, nil
			}
		}
	}
}

// Stats returns the persisted focus-session stats.
func (s *FocusService) Stats(ctx context.Context) (focus.Stats, error) {
	return s.store.Get(ctx)
}
