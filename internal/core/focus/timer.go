package focus

import (
	"errors"
	"time"
)

// ErrTimerRunning is returned when a duration change is attempted while the
// timer is running.
var ErrTimerRunning = errors.New("timer is running")

// State is the timer lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// Mode distinguishes work sessions from breaks.
type Mode string

const (
	ModeFocus Mode = "focus"
	ModeBreak Mode = "break"
)

// Duration bounds in minutes. Adjustments move in steps of DurationStep.
const (
	MinWorkMinutes  = 5
	MaxWorkMinutes  = 180
	MinBreakMinutes = 5
	MaxBreakMinutes = 30
	DurationStep    = 5
)

// Timer is the pomodoro countdown state machine.
//
// Transitions: Idle -> Running (Start), Running -> Paused (Pause),
// Paused -> Running (Start), any -> Idle (Reset), and Running -> Idle when a
// countdown reaches zero, toggling between focus and break modes. The timer
// holds no scheduler of its own; a runner drives it through Advance.
type Timer struct {
	work      int // minutes
	brk       int // minutes
	mode      Mode
	state     State
	remaining time.Duration
}

// NewTimer creates an idle timer in focus mode. Durations outside the
// allowed bounds are clamped.
func NewTimer(workMinutes, breakMinutes int) *Timer {
	t := &Timer{
		work:  clamp(workMinutes, MinWorkMinutes, MaxWorkMinutes),
		brk:   clamp(breakMinutes, MinBreakMinutes, MaxBreakMinutes),
		mode:  ModeFocus,
		state: StateIdle,
	}
	t.remaining = time.Duration(t.work) * time.Minute
	return t
}

func (t *Timer) State() State             { return t.state }
func (t *Timer) Mode() Mode               { return t.mode }
func (t *Timer) Remaining() time.Duration { return t.remaining }
func (t *Timer) WorkMinutes() int         { return t.work }
func (t *Timer) BreakMinutes() int        { return t.brk }

// Start begins or resumes the countdown. Starting a running timer is a
// no-op; the return value reports whether the state changed.
func (t *Timer) Start() bool {
	if t.state == StateRunning {
		return false
	}
	t.state = StateRunning
	return true
}

// Pause suspends a running countdown. Pausing a timer that is not running
// is a no-op.
func (t *Timer) Pause() bool {
	if t.state != StateRunning {
		return false
	}
	t.state = StatePaused
	return true
}

// Reset returns the timer to idle focus mode with a full work countdown.
// Always safe to call, including when the timer is already idle.
func (t *Timer) Reset() {
	t.state = StateIdle
	t.mode = ModeFocus
	t.remaining = time.Duration(t.work) * time.Minute
}

// SetWorkMinutes changes the work duration, clamped to bounds. Returns
// ErrTimerRunning while the countdown is active. When idle in focus mode
// the remaining time follows the new duration.
func (t *Timer) SetWorkMinutes(minutes int) error {
	if t.state == StateRunning {
		return ErrTimerRunning
	}
	t.work = clamp(minutes, MinWorkMinutes, MaxWorkMinutes)
	if t.mode == ModeFocus {
		t.remaining = time.Duration(t.work) * time.Minute
	}
	return nil
}

// SetBreakMinutes changes the break duration, clamped to bounds. Returns
// ErrTimerRunning while the countdown is active.
func (t *Timer) SetBreakMinutes(minutes int) error {
	if t.state == StateRunning {
		return ErrTimerRunning
	}
	t.brk = clamp(minutes, MinBreakMinutes, MaxBreakMinutes)
	if t.mode == ModeBreak {
		t.remaining = time.Duration(t.brk) * time.Minute
	}
	return nil
}

// Advance moves the countdown forward by d. It does nothing unless the
// timer is running. When the countdown reaches zero the session completes:
// the timer goes idle, the mode toggles, and the next countdown is loaded.
// The return values report whether a session completed and which mode it
// was.
func (t *Timer) Advance(d time.Duration) (completed bool, finished Mode) {
	if t.state != StateRunning {
		return false, ""
	}

	t.remaining -= d
	if t.remaining > 0 {
		return false, ""
	}

	finished = t.mode
	t.state = StateIdle
	if t.mode == ModeFocus {
		t.mode = ModeBreak
		t.remaining = time.Duration(t.brk) * time.Minute
	} else {
		t.mode = ModeFocus
		t.remaining = time.Duration(t.work) * time.Minute
	}
	return true, finished
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
