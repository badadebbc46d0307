// Package clock provides the monotonic time source read by the simulation.
//
// The encounter reads Now once per tick, so every system in that tick
// compares cooldowns against the same instant.
package clock

import (
	"time"
)

// Clock reports elapsed time since an arbitrary origin. Successive calls
// never go backwards.
type Clock interface {
	Now() time.Duration
}

// Ticker is a fixed-step clock advanced by the game loop.
type Ticker struct {
	rate  int
	ticks int64
}

// NewTicker returns a clock that advances by 1/rate seconds per Advance.
func NewTicker(rate int) *Ticker {
	if rate <= 0 {
		rate = 60
	}
	return &Ticker{rate: rate}
}

// Advance moves the clock forward by one tick.
func (t *Ticker) Advance() {
	t.ticks++
}

// Ticks returns the number of ticks advanced so far.
func (t *Ticker) Ticks() int64 {
	return t.ticks
}

// Now is derived from the tick count so rounding never accumulates.
func (t *Ticker) Now() time.Duration {
	return time.Duration(t.ticks * int64(time.Second) / int64(t.rate))
}

// Manual is a clock moved explicitly, for tests and replays.
type Manual struct {
	now time.Duration
}

// NewManual returns a manual clock starting at start.
func NewManual(start time.Duration) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Duration {
	return m.now
}

// Add moves the clock forward. Negative steps are ignored.
func (m *Manual) Add(d time.Duration) {
	if d > 0 {
		m.now += d
	}
}

// Set moves the clock to t unless that would go backwards.
func (m *Manual) Set(t time.Duration) {
	if t > m.now {
		m.now = t
	}
}
