// Package debounce coalesces bursts of values into a single delayed call and
// tracks which call is current so late results of superseded work can be
// ignored.
package debounce

import (
	"sync"
	"time"
)

// Token identifies one fired (or immediately started) unit of work.
// It stays current until the next Trigger, Supersede or Stop.
type Token uint64

// Debouncer delays fn until Trigger has not been called for interval, then
// calls it once with the latest value.
type Debouncer[T any] struct {
	interval time.Duration
	fn       func(Token, T)

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	stopped bool
}

func New[T any](interval time.Duration, fn func(Token, T)) *Debouncer[T] {
	return &Debouncer[T]{interval: interval, fn: fn}
}

// Trigger re-arms the timer with v, dropping any pending value. Work started
// for an earlier token stops being current right away.
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() { d.fire(gen, v) })
}

func (d *Debouncer[T]) fire(gen uint64, v T) {
	d.mu.Lock()
	// Stop cannot recall a timer whose func already started.
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn(Token(gen), v)
}

// Supersede cancels the pending call, if any, and returns a fresh current
// token for work the caller starts immediately.
func (d *Debouncer[T]) Supersede() Token {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return Token(d.gen)
}

// Current reports whether tok is still the latest token.
func (d *Debouncer[T]) Current(tok Token) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.stopped && uint64(tok) == d.gen
}

// Pending reports whether a call is armed and has not fired yet.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop clears the pending call and makes every token stale. Later Triggers
// are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
