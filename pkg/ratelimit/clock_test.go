package ratelimit_test

import (
	"sync"
	"time"
)

// fakeClock lets tests advance time deterministically instead of sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Rewind moves the clock backward to exercise backward-skew clamping.
func (c *fakeClock) Rewind(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(-d)
	c.mu.Unlock()
}
