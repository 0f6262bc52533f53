// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package timer

import (
	"fmt"
	"sync"
	"time"
)

// Timer states.
const (
	StateIdle    = "idle"
	StateRunning = "running"
	StatePaused  = "paused"
)

// Timer is the inspection elapsed-time accumulator. While running, elapsed
// is (now - reference instant); pausing freezes the value and resuming
// recomputes the reference as (now - frozen elapsed), so elapsed never
// jumps or goes backwards across pause/resume cycles.
type Timer struct {
	mu         sync.Mutex
	now        func() time.Time
	state      string
	reference  time.Time     // valid while running
	frozen     time.Duration // elapsed while paused or idle
	interacted bool          // set by the first Start, cleared by Reset
	onTick     func(display string)
	tickStop   chan struct{}
	tickPeriod time.Duration
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock substitutes the wall-clock source. Tests use a fake clock.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) { t.now = now }
}

// WithTick registers a periodic display callback, fired once per second
// while the timer is running. The callback goroutine is stopped by Pause,
// Reset, and Stop.
func WithTick(fn func(display string)) Option {
	return func(t *Timer) { t.onTick = fn }
}

// New returns an idle timer.
func New(opts ...Option) *Timer {
	t := &Timer{
		now:        time.Now,
		state:      StateIdle,
		tickPeriod: time.Second,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start moves the timer to running. From idle it begins at zero; from
// paused it resumes from the frozen elapsed value. Starting a running timer
// is a no-op.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateRunning {
		return
	}
	t.interacted = true
	t.reference = t.now().Add(-t.frozen)
	t.state = StateRunning
	t.startTickLocked()
}

// Pause freezes elapsed at its current value and returns it in whole
// seconds. Pausing an idle or paused timer returns the frozen value.
func (t *Timer) Pause() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateRunning {
		t.frozen = t.now().Sub(t.reference)
		t.state = StatePaused
		t.stopTickLocked()
	}
	return int(t.frozen / time.Second)
}

// Reset returns the timer to idle with elapsed cleared and the
// first-interaction flag unset.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopTickLocked()
	t.state = StateIdle
	t.frozen = 0
	t.interacted = false
}

// Stop halts the tick goroutine without otherwise changing state. Used at
// application teardown.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopTickLocked()
}

// SetElapsed pauses the timer at the given whole-second value. Loading a
// historical inspection restores its recorded duration this way.
func (t *Timer) SetElapsed(seconds int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopTickLocked()
	t.frozen = time.Duration(seconds) * time.Second
	t.state = StatePaused
	t.interacted = true
}

// Elapsed returns whole seconds of accumulated inspection time.
func (t *Timer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return int(t.elapsedLocked() / time.Second)
}

// State returns one of idle, running, paused.
func (t *Timer) State() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Interacted reports whether the timer has been started since the last
// Reset. The session uses it to start the clock on first form interaction
// only.
func (t *Timer) Interacted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interacted
}

// Display returns the current elapsed time formatted HH:MM:SS.
func (t *Timer) Display() string {
	return Format(t.Elapsed())
}

func (t *Timer) elapsedLocked() time.Duration {
	if t.state == StateRunning {
		return t.now().Sub(t.reference)
	}
	return t.frozen
}

func (t *Timer) startTickLocked() {
	if t.onTick == nil || t.tickStop != nil {
		return
	}
	stop := make(chan struct{})
	t.tickStop = stop
	go func() {
		ticker := time.NewTicker(t.tickPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				t.onTick(t.Display())
			}
		}
	}()
}

func (t *Timer) stopTickLocked() {
	if t.tickStop != nil {
		close(t.tickStop)
		t.tickStop = nil
	}
}

// Format renders whole seconds as zero-padded HH:MM:SS.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}
