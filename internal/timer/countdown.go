// Package timer implements the workout countdown: a periodic one-second
// callback that can be paused, resumed and reset without leaking its
// ticker goroutine.
package timer

import (
	"sync"
	"time"
)

// Countdown counts a workout down to zero, firing OnTick every interval
// and OnComplete exactly once when the remaining time reaches zero.
type Countdown struct {
	interval   time.Duration
	onTick     func(remaining int)
	onComplete func()

	mu        sync.Mutex
	remaining int
	running   bool
	stop      chan struct{}
}

// Option configures a Countdown.
type Option func(*Countdown)

// WithInterval overrides the one-second tick, for tests.
func WithInterval(d time.Duration) Option {
	return func(c *Countdown) { c.interval = d }
}

// WithOnTick registers a per-tick callback receiving remaining seconds.
func WithOnTick(fn func(remaining int)) Option {
	return func(c *Countdown) { c.onTick = fn }
}

// WithOnComplete registers the completion callback.
func WithOnComplete(fn func()) Option {
	return func(c *Countdown) { c.onComplete = fn }
}

func New(opts ...Option) *Countdown {
	c := &Countdown{interval: time.Second}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins counting down from seconds. A running countdown is
// cleared first.
func (c *Countdown) Start(seconds int) {
	c.mu.Lock()
	c.stopLocked()
	c.remaining = seconds
	c.startLocked()
	c.mu.Unlock()
}

// Pause clears the periodic callback but keeps the remaining time.
func (c *Countdown) Pause() {
	c.mu.Lock()
	c.stopLocked()
	c.mu.Unlock()
}

// Resume reinstates the periodic callback after a pause.
func (c *Countdown) Resume() {
	c.mu.Lock()
	if !c.running && c.remaining > 0 {
		c.startLocked()
	}
	c.mu.Unlock()
}

// Reset stops the countdown and zeroes the remaining time.
func (c *Countdown) Reset() {
	c.mu.Lock()
	c.stopLocked()
	c.remaining = 0
	c.mu.Unlock()
}

// Stop is an alias for Reset, guaranteeing no callback fires afterward.
func (c *Countdown) Stop() { c.Reset() }

// Remaining reports the seconds left.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Running reports whether the ticker is active.
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *Countdown) startLocked() {
	if c.remaining <= 0 {
		return
	}
	stop := make(chan struct{})
	c.stop = stop
	c.running = true
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.mu.Lock()
				if !c.running || c.stop != stop {
					c.mu.Unlock()
					return
				}
				c.remaining--
				remaining := c.remaining
				done := remaining <= 0
				if done {
					c.stopLocked()
				}
				c.mu.Unlock()
				if c.onTick != nil {
					c.onTick(remaining)
				}
				if done {
					if c.onComplete != nil {
						c.onComplete()
					}
					return
				}
			}
		}
	}()
}

func (c *Countdown) stopLocked() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	c.running = false
}
