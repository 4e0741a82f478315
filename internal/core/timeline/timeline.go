// Package timeline merges tasks, goals, expanded habit occurrences, and
// ad-hoc events into one uniform sequence of derived items for chronological
// display. Items are produced fresh on every call and never persisted.
package timeline

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/taskgamer/taskgamer/internal/core/event"
	"github.com/taskgamer/taskgamer/internal/core/goal"
	"github.com/taskgamer/taskgamer/internal/core/habit"
	"github.com/taskgamer/taskgamer/internal/core/recurrence"
	"github.com/taskgamer/taskgamer/internal/core/task"
	"github.com/taskgamer/taskgamer/pkg/dateutil"
)

// Kind discriminates which entity a timeline item was derived from, so each
// arm of the merge is handled exhaustively instead of by string category
// checks.
type Kind string

const (
	KindTask  Kind = "task"
	KindGoal  Kind = "goal"
	KindHabit Kind = "habit"
	KindEvent Kind = "event"
)

// State is the presentation-agnostic completion classification of an item.
type State string

const (
	StatePending    State = "pending"
	StateInProgress State = "in-progress"
	StateCompleted  State = "completed"
)

// DefaultUpcomingLimit is the display count for the upcoming-items view.
const DefaultUpcomingLimit = 5

// DefaultWindowMonths is the habit expansion horizon for calendar views.
const DefaultWindowMonths = 3

// Item is the uniform derived representation of a task, goal, habit
// occurrence, or event. IDs are namespaced by source kind (task-<id>,
// goal-<id>, habit-<id>-<date>) so an item traces back to its origin.
type Item struct {
	ID       string    `json:"id"`
	Kind     Kind      `json:"kind"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	Category string    `json:"category"`
	State    State     `json:"state"`
	Class    string    `json:"class"`
	SourceID string    `json:"sourceId"`
	Date     string    `json:"date,omitempty"` // habit occurrence date key
}

// Window bounds habit expansion: occurrences are generated for calendar
// days in [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

// DefaultWindow returns the calendar-view expansion window: the first day
// of the current month through three calendar months out.
func DefaultWindow(now time.Time) Window {
	from := dateutil.StartOfMonth(now)
	return Window{From: from, To: from.AddDate(0, DefaultWindowMonths, 0)}
}

// Materialize merges the four collections into one item sequence. Tasks,
// goals, and events contribute one item each; habits contribute one item
// per recurrence occurrence inside the window. The raw output makes no
// ordering guarantee.
func Materialize(tasks []task.Task, goals []goal.Goal, habits []habit.Habit, events []event.Event, win Window) []Item {
	var items []Item

	for _, t := range tasks {
		items = append(items, fromTask(t))
	}
	for _, g := range goals {
		items = append(items, fromGoal(g))
	}
	for _, h := range habits {
		for occ := range recurrence.Occurrences(h, win.From, win.To) {
			items = append(items, fromOccurrence(h, occ))
		}
	}
	for _, e := range events {
		items = append(items, fromEvent(e))
	}

	return items
}

// Upcoming filters items whose start is strictly after now, sorts them
// ascending by start, and truncates to limit. This is the display policy
// for the upcoming-items view.
func Upcoming(items []Item, now time.Time, limit int) []Item {
	upcoming := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Start.After(now) {
			upcoming = append(upcoming, it)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Start.Before(upcoming[j].Start)
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// ParseID splits a namespaced item ID back into its source kind, entity ID,
// and occurrence date (habits only). Used to resolve a clicked calendar
// cell back to the entity that produced it.
func ParseID(id string) (kind Kind, sourceID string, date string, ok bool) {
	switch {
	case strings.HasPrefix(id, "task-"):
		return KindTask, strings.TrimPrefix(id, "task-"), "", true
	case strings.HasPrefix(id, "goal-"):
		return KindGoal, strings.TrimPrefix(id, "goal-"), "", true
	case strings.HasPrefix(id, "habit-"):
		rest := strings.TrimPrefix(id, "habit-")
		// Occurrence dates are a fixed-width YYYY-MM-DD suffix.
		if len(rest) < len("x-2006-01-02") {
			return "", "", "", false
		}
		cut := len(rest) - len("2006-01-02") - 1
		if rest[cut] != '-' {
			return "", "", "", false
		}
		return KindHabit, rest[:cut], rest[cut+1:], true
	default:
		return "", "", "", false
	}
}

func fromTask(t task.Task) Item {
	state := StatePending
	class := "task-default"
	switch t.Status {
	case task.StatusInProgress:
		state, class = StateInProgress, "task-in-progress"
	case task.StatusCompleted:
		state, class = StateCompleted, "task-completed"
	}
	return Item{
		ID:       "task-" + t.ID,
		Kind:     KindTask,
		Title:    t.Title,
		Start:    t.DueDate,
		Category: "task",
		State:    state,
		Class:    class,
		SourceID: t.ID,
	}
}

func fromGoal(g goal.Goal) Item {
	state := StatePending
	class := "goal-default"
	switch g.Status {
	case goal.StatusNotStarted:
		class = "goal-not-started"
	case goal.StatusInProgress:
		state, class = StateInProgress, "goal-in-progress"
	case goal.StatusCompleted:
		state, class = StateCompleted, "goal-completed"
	}
	return Item{
		ID:       "goal-" + g.ID,
		Kind:     KindGoal,
		Title:    g.Title,
		Start:    g.Deadline,
		Category: "goal",
		State:    state,
		Class:    class,
		SourceID: g.ID,
	}
}

func fromOccurrence(h habit.Habit, occ recurrence.Occurrence) Item {
	state := StatePending
	class := "habit-pending"
	marker := "🔴"
	if occ.Completed {
		state, class, marker = StateCompleted, "habit-completed", "✅"
	}
	date := dateutil.Key(occ.Date)
	return Item{
		ID:       fmt.Sprintf("habit-%s-%s", h.ID, date),
		Kind:     KindHabit,
		Title:    fmt.Sprintf("%s %s", marker, h.Title),
		Start:    occ.Date,
		Category: "habit",
		State:    state,
		Class:    class,
		SourceID: h.ID,
		Date:     date,
	}
}

func fromEvent(e event.Event) Item {
	category := e.Category
	if category == "" {
		category = "other"
	}
	return Item{
		ID:       e.ID,
		Kind:     KindEvent,
		Title:    e.Title,
		Start:    e.Start,
		Category: category,
		State:    StatePending,
		Class:    "event-" + category,
		SourceID: e.ID,
	}
}
