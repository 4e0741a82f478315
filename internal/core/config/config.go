// Package config handles configuration loading and validation for taskgamer.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taskgamer/taskgamer/internal/core/focus"
)

// Config holds the application configuration.
type Config struct {
	Timer    TimerConfig    `yaml:"timer"`
	Timeline TimelineConfig `yaml:"timeline"`
	DataDir  string         `yaml:"-"` // set by caller, not from config file
}

// TimerConfig holds pomodoro timer defaults.
type TimerConfig struct {
	WorkMinutes  int `yaml:"work_minutes"`
	BreakMinutes int `yaml:"break_minutes"`
}

// TimelineConfig holds timeline materialization policy.
type TimelineConfig struct {
	// WindowMonths is the habit expansion horizon for calendar views.
	WindowMonths int `yaml:"window_months"`
	// UpcomingLimit is the display count for the upcoming-items view.
	UpcomingLimit int `yaml:"upcoming_limit"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timer: TimerConfig{
			WorkMinutes:  25,
			BreakMinutes: 5,
		},
		Timeline: TimelineConfig{
			WindowMonths:  3,
			UpcomingLimit: 5,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the
// provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Timer.WorkMinutes == 0 {
		c.Timer.WorkMinutes = defaults.Timer.WorkMinutes
	}
	if c.Timer.BreakMinutes == 0 {
		c.Timer.BreakMinutes = defaults.Timer.BreakMinutes
	}
	if c.Timeline.WindowMonths == 0 {
		c.Timeline.WindowMonths = defaults.Timeline.WindowMonths
	}
	if c.Timeline.UpcomingLimit == 0 {
		c.Timeline.UpcomingLimit = defaults.Timeline.UpcomingLimit
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.Timer.WorkMinutes < focus.MinWorkMinutes || c.Timer.WorkMinutes > focus.MaxWorkMinutes {
		return fmt.Errorf("timer.work_minutes must be between %d and %d", focus.MinWorkMinutes, focus.MaxWorkMinutes)
	}

	if c.Timer.BreakMinutes < focus.MinBreakMinutes || c.Timer.BreakMinutes > focus.MaxBreakMinutes {
		return fmt.Errorf("timer.break_minutes must be between %d and %d", focus.MinBreakMinutes, focus.MaxBreakMinutes)
	}

	if c.Timeline.WindowMonths < 1 {
		return fmt.Errorf("timeline.window_months must be at least 1")
	}

	if c.Timeline.UpcomingLimit < 1 {
		return fmt.Errorf("timeline.upcoming_limit must be at least 1")
	}

	return nil
}
