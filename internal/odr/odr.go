// Package odr tracks whether an accelerometer running at a fixed output data rate has produced a new sample since it
// was last read. Used for sensors whose driver does not expose the data-ready status bit.
package odr

import "time"

type Gate struct {
	period time.Duration
	last   time.Time
	now    func() time.Time
}

// New returns a gate for the given output data rate in Hz. Rates of zero or less are treated as 1 Hz.
func New(hz int) *Gate {
	return NewWithClock(hz, time.Now)
}

func NewWithClock(hz int, now func() time.Time) *Gate {
	if hz <= 0 {
		hz = 1
	}
	if now == nil {
		now = time.Now
	}
	return &Gate{
		period: time.Second / time.Duration(hz),
		now:    now,
	}
}

// Period is the time between two samples.
func (g *Gate) Period() time.Duration { return g.period }

// Ready reports whether a full period has elapsed since the last ready sample, and if so starts the next period.
// The very first call is always ready.
func (g *Gate) Ready() bool {
	t := g.now()
	if !g.last.IsZero() && t.Sub(g.last) < g.period {
		return false
	}
	g.last = t
	return true
}
