package gesture

import (
	"math"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func assertApprox(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !approx(got, want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// phoneLayout is the 375x812 portrait viewport used across tests.
func phoneLayout(t *testing.T) (Layout, Config) {
	t.Helper()
	cfg := DefaultConfig()
	return NewLayout(375, 812, 0, cfg), cfg
}

// farFuture is past the end of any settle in these tests.
var farFuture = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
