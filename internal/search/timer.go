package search

import (
	"sync/atomic"
	"time"
)

// checkTimerEvery bounds how often the move loop reads the clock,
// amortizing the cost of repeated time.Now calls across iterations
// (spec.md §4.J "checked inside the move loop at a coarse
// granularity").
const checkTimerEvery = 64

// MoveTimer is the clock shared between a search and everything that
// can interrupt it. triggered and cancelled are distinct per spec.md
// §4.J: triggered means "time is up, return what you have"; cancelled
// means "discard everything, the caller doesn't want a result".
type MoveTimer struct {
	deadline  time.Time
	triggered atomic.Bool
	cancelled atomic.Bool
}

// NewMoveTimer returns a timer that fires after budget elapses from
// now.
func NewMoveTimer(budget time.Duration) *MoveTimer {
	return &MoveTimer{deadline: time.Now().Add(budget)}
}

// Cancel requests that any search sharing this timer discard its
// results, per spec.md §5's user-supplied periodic callback.
func (t *MoveTimer) Cancel() {
	t.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (t *MoveTimer) Cancelled() bool {
	return t.cancelled.Load()
}

// Triggered reports whether the timer has fired, i.e. whether a Poll
// call has seen the deadline pass.
func (t *MoveTimer) Triggered() bool {
	return t.triggered.Load()
}

// Poll checks the wall clock against the deadline and, if it has
// passed, marks the timer triggered. Call sites are expected to poll
// roughly every checkTimerEvery move-loop iterations rather than on
// every one.
func (t *MoveTimer) Poll() bool {
	if t.triggered.Load() {
		return true
	}
	if !time.Now().Before(t.deadline) {
		t.triggered.Store(true)
	}
	return t.triggered.Load()
}

// ShouldStop reports whether the search observing this timer should
// return now, either because time ran out or the caller cancelled.
func (t *MoveTimer) ShouldStop() bool {
	return t.Triggered() || t.Cancelled()
}

// iterationGate amortizes MoveTimer.Poll calls across move-loop
// iterations: it only actually polls the clock every checkTimerEvery
// ticks; the ticks in between report the already-recorded triggered
// and cancelled flags without reading the clock.
type iterationGate struct {
	count int
}

func (g *iterationGate) tick(t *MoveTimer) bool {
	g.count++
	if g.count%checkTimerEvery != 0 {
		return t.Triggered() || t.Cancelled()
	}
	return t.Poll() || t.Cancelled()
}
