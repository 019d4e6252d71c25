// Package testutil provides deterministic stand-ins for tests.
package testutil

import (
	"sync"
	"time"
)

// FixedClock is a wall clock pinned to a known instant.
//
// Injecting it into the log store makes insert timestamps reproducible,
// which enables golden snapshot comparison of printed log output.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu sync.Mutex
	t  time.Time
}

// NewFixedClock creates a clock pinned to the given instant.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{t: t}
}

// Now returns the pinned instant.
//
// Implements logstore.Clock.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Advance moves the clock forward by d. Subsequent Now() calls return
// the shifted instant.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
