package eyes

import (
	"sync"
	"time"
)

// Clock supplies the engine's timestamps. All controller math uses
// elapsed-time comparisons against values from one Clock, so any
// monotonically non-decreasing source works.
type Clock interface {
	Now() time.Time
}

// MonotonicClock reads the system clock with its monotonic component.
type MonotonicClock struct{}

// NewMonotonicClock creates the default real-time clock.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

// Now returns the current time with monotonic clock reading.
func (c *MonotonicClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable time source for tests.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a manual clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// SetTime jumps the clock to t.
func (c *ManualClock) SetTime(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
