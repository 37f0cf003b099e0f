package core

import (
	"time"

	"focusdash/internal/clock"
)

// PhaseEvent reports what a pomodoro boundary check did.
type PhaseEvent int

const (
	PhaseNone PhaseEvent = iota
	PhaseWorkComplete
	PhaseBreakComplete
)

// Timer is the runtime focus-session state machine. It exists only for the
// lifetime of one application run; durable time lives in the store and only
// gets there through an Engine commit. Elapsed time grows while running via
// wall-clock deltas and is drained exactly once, on Stop or at a pomodoro
// cutover.
type Timer struct {
	clock   *clock.Clock
	running bool
	start   time.Time
	elapsed float64 // seconds since the last drain
	onBreak bool
}

func NewTimer(c *clock.Clock) *Timer {
	return &Timer{clock: c}
}

// Start arms the timer in the work phase. Starting while already running
// re-arms the start instant without touching the accumulated elapsed time,
// so a stray Start is a harmless restart.
func (t *Timer) Start() {
	now := t.clock.Now()
	if t.running {
		t.start = now
		return
	}
	t.running = true
	t.start = now
	t.elapsed = 0
	t.onBreak = false
}

// Tick folds the wall-clock delta since the last tick into the accumulated
// elapsed time and rebases the start instant. A negative delta from a
// non-monotonic clock is clamped to zero. A late tick simply yields a larger
// delta; cadence is advisory, not a correctness requirement.
func (t *Timer) Tick() {
	if !t.running {
		return
	}
	now := t.clock.Now()
	if delta := now.Sub(t.start).Seconds(); delta > 0 {
		t.elapsed += delta
	}
	t.start = now
}

// BoundaryCheck applies the pomodoro cutover after a tick. When the current
// phase has run its full duration the timer flips phase, zeroes the live
// elapsed time and rebases. The cutover is hard: overflow beyond the
// threshold is discarded and nothing is committed at the boundary.
func (t *Timer) BoundaryCheck(workSecs, breakSecs float64) PhaseEvent {
	if !t.running {
		return PhaseNone
	}
	switch {
	case !t.onBreak && t.elapsed >= workSecs:
		t.onBreak = true
		t.elapsed = 0
		t.start = t.clock.Now()
		return PhaseWorkComplete
	case t.onBreak && t.elapsed >= breakSecs:
		t.onBreak = false
		t.elapsed = 0
		t.start = t.clock.Now()
		return PhaseBreakComplete
	}
	return PhaseNone
}

// Stop drains the accumulated elapsed time and returns the timer to idle.
// Whatever partial time is live at this moment is exactly what the caller
// commits. Stopping an idle timer yields a zero snapshot.
func (t *Timer) Stop() (elapsed float64, onBreak bool) {
	if !t.running {
		return 0, false
	}
	t.Tick()
	elapsed, onBreak = t.elapsed, t.onBreak
	t.running = false
	t.elapsed = 0
	t.onBreak = false
	return elapsed, onBreak
}

func (t *Timer) Running() bool { return t.running }
func (t *Timer) OnBreak() bool { return t.onBreak }

// Elapsed is the live, uncommitted seconds of the current phase.
func (t *Timer) Elapsed() float64 { return t.elapsed }
