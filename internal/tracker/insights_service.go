package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskgamer/taskgamer/internal/core/focus"
	"github.com/taskgamer/taskgamer/internal/core/goal"
	"github.com/taskgamer/taskgamer/internal/core/habit"
	"github.com/taskgamer/taskgamer/internal/core/insights"
	"github.com/taskgamer/taskgamer/internal/core/scoring"
	"github.com/taskgamer/taskgamer/internal/core/task"
	"github.com/taskgamer/taskgamer/pkg/dateutil"
)

// TrendDays is the lookback window for score and completion trends.
const TrendDays = 7

// Dashboard aggregates the headline numbers shown by the stats view.
type Dashboard struct {
	Tasks             insights.TaskStatusCounts `json:"tasks"`
	TasksByCategory   map[string]int            `json:"tasksByCategory"`
	Goals             insights.GoalCounts       `json:"goals"`
	GoalSuccessRate   float64                   `json:"goalSuccessRate"`
	MaxHabitStreak    int                       `json:"maxHabitStreak"`
	Focus             insights.FocusSummary     `json:"focus"`
	TodayScore        float64                   `json:"todayScore"`
	CompletedThisWeek [7]int                    `json:"completedThisWeek"` // Monday first
}

// TrendPoint is one sample of a per-day series.
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Report is the exportable productivity summary.
type Report struct {
	GeneratedAt         time.Time      `json:"generatedAt"`
	TasksCompleted      int            `json:"tasksCompleted"`
	TasksTotal          int            `json:"tasksTotal"`
	CompletionRate      float64        `json:"completionRate"`
	TasksByCategory     map[string]int `json:"tasksByCategory"`
	GoalsAchieved       int            `json:"goalsAchieved"`
	GoalsTotal          int            `json:"goalsTotal"`
	MaxHabitStreak      int            `json:"maxHabitStreak"`
	FocusMinutes        int            `json:"focusMinutes"`
	FocusSessions       int            `json:"focusSessions"`
	DailyFocusSessions  int            `json:"dailyFocusSessions"`
	AverageFocusSession float64        `json:"averageFocusSession"`
	TodayScore          float64        `json:"todayScore"`
	ScoreTrend          []TrendPoint   `json:"scoreTrend"`
}

// snapshot is one consistent read of every collection the reducers consume.
type snapshot struct {
	tasks  []task.Task
	goals  []goal.Goal
	habits []habit.Habit
	stats  focus.Stats
}

// InsightsService computes dashboards, trends, and reports by reading the
// stores fresh on every call and running the pure reducers over the result.
type InsightsService struct {
	tasks  task.Store
	goals  goal.Store
	habits habit.Store
	focus  focus.Store
	log    zerolog.Logger
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(stores Stores, log zerolog.Logger) *InsightsService {
	return &InsightsService{
		tasks:  stores.Tasks,
		goals:  stores.Goals,
		habits: stores.Habits,
		focus:  stores.Focus,
		log:    log.With().Str("component", "insights-service").Logger(),
	}
}

func (s *InsightsService) snapshot(ctx context.Context) (snapshot, error) {
	var snap snapshot
	var err error

	if snap.tasks, err = s.tasks.List(ctx); err != nil {
		return snapshot{}, fmt.Errorf("list tasks: %w", err)
	}
	if snap.goals, err = s.goals.List(ctx); err != nil {
		return snapshot{}, fmt.Errorf("list goals: %w", err)
	}
	if snap.habits, err = s.habits.List(ctx); err != nil {
		return snapshot{}, fmt.Errorf("list habits: %w", err)
	}
	if snap.stats, err = s.focus.Get(ctx); err != nil {
		return snapshot{}, fmt.Errorf("load focus stats: %w", err)
	}

	return snap, nil
}

// Dashboard computes the headline stats view as of now.
func (s *InsightsService) Dashboard(ctx context.Context, now time.Time) (Dashboard, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		Tasks:             insights.CountTasksByStatus(snap.tasks),
		TasksByCategory:   insights.CountTasksByCategory(snap.tasks),
		Goals:             insights.CountGoals(snap.goals),
		GoalSuccessRate:   insights.GoalSuccessRate(snap.goals),
		MaxHabitStreak:    insights.MaxHabitStreak(snap.habits),
		Focus:             insights.SummarizeFocus(snap.stats),
		TodayScore:        scoring.DailyScore(snap.tasks, snap.goals, snap.habits, snap.stats, now),
		CompletedThisWeek: insights.CompletedByWeekday(snap.tasks, now),
	}, nil
}

// Score returns the composite productivity score for the day containing
// date.
func (s *InsightsService) Score(ctx context.Context, date time.Time) (float64, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return scoring.DailyScore(snap.tasks, snap.goals, snap.habits, snap.stats, date), nil
}

// ScoreTrend returns the daily score for each of the last TrendDays days,
// oldest first.
func (s *InsightsService) ScoreTrend(ctx context.Context, now time.Time) ([]TrendPoint, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return scoreTrend(snap, now), nil
}

// CompletionTrend returns the per-day task completion rate for each of the
// last TrendDays days, oldest first.
func (s *InsightsService) CompletionTrend(ctx context.Context, now time.Time) ([]TrendPoint, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	dates := dateutil.LastNDays(now, TrendDays)
	rates := scoring.CompletionRateSeries(snap.tasks, dates)

	points := make([]TrendPoint, len(dates))
	for i, d := range dates {
		points[i] = TrendPoint{Date: dateutil.Key(d), Value: rates[i]}
	}
	return points, nil
}

// BuildReport assembles the exportable productivity report as of now.
func (s *InsightsService) BuildReport(ctx context.Context, now time.Time) (Report, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return Report{}, err
	}

	taskCounts := insights.CountTasksByStatus(snap.tasks)
	goalCounts := insights.CountGoals(snap.goals)

	report := Report{
		GeneratedAt:         now,
		TasksCompleted:      taskCounts.Completed,
		TasksTotal:          len(snap.tasks),
		CompletionRate:      insights.OverallCompletionRate(snap.tasks),
		TasksByCategory:     insights.CountTasksByCategory(snap.tasks),
		GoalsAchieved:       goalCounts.Completed,
		GoalsTotal:          goalCounts.Total,
		MaxHabitStreak:      insights.MaxHabitStreak(snap.habits),
		FocusMinutes:        snap.stats.TotalFocusTime,
		FocusSessions:       snap.stats.TotalSessions,
		DailyFocusSessions:  snap.stats.DailySessions,
		AverageFocusSession: snap.stats.AverageSession(),
		TodayScore:          scoring.DailyScore(snap.tasks, snap.goals, snap.habits, snap.stats, now),
		ScoreTrend:          scoreTrend(snap, now),
	}

	s.log.Debug().
		Int("tasks", report.TasksTotal).
		Int("goals", report.GoalsTotal).
		Msg("report built")
	return report, nil
}

func scoreTrend(snap snapshot, now time.Time) []TrendPoint {
	dates := dateutil.LastNDays(now, TrendDays)
	scores := scoring.ScoreSeries(snap.tasks, snap.goals, snap.habits, snap.stats, dates)

	points := make([]TrendPoint, len(dates))
	for i, d := range dates {
		points[i] = TrendPoint{Date: dateutil.Key(d), Value: scores[i]}
	}
	return points
}
