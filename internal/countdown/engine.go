// Package countdown keeps the remaining time of a countdown accurate across
// pause/resume cycles by deriving it from elapsed wall-clock time rather than
// from the number of ticks observed.
package countdown

import "time"

// Engine owns the countdown state. It is not safe for concurrent use: the
// host mutates it from a single goroutine and only learns about trigger fires
// through the notify callback.
type Engine struct {
	clock   Clock
	trigger Trigger
	notify  func()

	total     int
	remaining int
	state     RunState
	disposed  bool

	// Not observable by the presentation layer.
	started     time.Time
	hasStarted  bool
	accumulated int
}

// NewEngine builds an idle engine with a zero duration. notify is handed to
// the trigger and called whenever a recompute is due; nil means the host
// polls Recompute itself.
func NewEngine(clock Clock, trigger Trigger, notify func()) *Engine {
	if clock == nil {
		clock = SystemClock
	}
	if trigger == nil {
		trigger = &Manual{}
	}
	if notify == nil {
		notify = func() {}
	}
	return &Engine{clock: clock, trigger: trigger, notify: notify}
}

func (e *Engine) Remaining() int  { return e.remaining }
func (e *Engine) Total() int      { return e.total }
func (e *Engine) State() RunState { return e.state }
func (e *Engine) Disposed() bool  { return e.disposed }

// Elapsed is the number of whole seconds consumed so far, including the
// current run segment.
func (e *Engine) Elapsed() int {
	return e.accumulated + e.segment()
}

// Load commits a new duration: remaining and total both become seconds, the
// accumulated time is cleared and the engine is forced to Paused.
func (e *Engine) Load(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	e.halt(Paused)
	e.total = seconds
	e.remaining = seconds
	e.accumulated = 0
}

// Start moves the engine to Running. Starting a running engine is a no-op.
func (e *Engine) Start() error {
	if e.disposed {
		return ErrDisposed
	}
	if e.state == Running {
		return nil
	}
	if e.remaining <= 0 {
		return ErrNothingToRun
	}
	if !e.hasStarted {
		e.started = e.clock.Now()
		e.hasStarted = true
	}
	e.state = Running
	e.trigger.Start(e.notify)
	return nil
}

// Pause publishes the remaining time at the pause moment, folds the current
// run segment into the accumulated time and stops the trigger. A pause that
// lands after the time ran out stops at zero in Idle instead. Pausing an
// engine that is not running is a no-op.
func (e *Engine) Pause() {
	if e.state != Running {
		return
	}
	if e.Recompute() == 0 {
		return
	}
	e.accumulated += e.segment()
	e.halt(Paused)
}

// Toggle flips between Running and Paused.
func (e *Engine) Toggle() error {
	if e.state == Running {
		e.Pause()
		return nil
	}
	return e.Start()
}

// Recompute derives the remaining time from the wall clock and publishes it.
// Outside Running it returns the frozen value without touching any state, so
// a late trigger fire cannot mutate a paused or disposed engine.
func (e *Engine) Recompute() int {
	if e.state != Running {
		return e.remaining
	}
	remaining := e.total - (e.segment() + e.accumulated)
	if remaining <= 0 {
		e.remaining = 0
		e.halt(Idle)
		return 0
	}
	e.remaining = remaining
	return remaining
}

// Dispose tears the trigger down for good. The engine keeps its last values
// but can no longer be started.
func (e *Engine) Dispose() {
	e.Pause()
	e.disposed = true
}

// segment is the whole number of seconds in the current run segment.
func (e *Engine) segment() int {
	if !e.hasStarted {
		return 0
	}
	d := e.clock.Now().Sub(e.started)
	if d <= 0 {
		return 0
	}
	return int(d / time.Second)
}

func (e *Engine) halt(next RunState) {
	wasRunning := e.state == Running
	e.state = next
	e.started = time.Time{}
	e.hasStarted = false
	if wasRunning {
		e.trigger.Stop()
	}
}
