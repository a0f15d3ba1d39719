package profiler

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeClock is a simulated clock where now is advanced manually.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
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

func newTestProfiler(t *testing.T, opts Options) (*Profiler, *fakeClock) {
	t.Helper()
	clk := newFakeClock()
	opts.Clock = clk
	return New(opts), clk
}

// expectViolation runs fn and fails unless it panics with an error wrapping
// want.
func expectViolation(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", want)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Fatalf("panic = %v, want error wrapping %v", r, want)
		}
	}()
	fn()
}

// scenarioAB enters A, then A;B for 10ms, then stays 5ms more in A.
func scenarioAB(p *Profiler, clk *fakeClock) {
	a := p.Enter("A")
	b := p.Enter("B")
	clk.Advance(10 * time.Millisecond)
	b.Exit()
	clk.Advance(5 * time.Millisecond)
	a.Exit()
}
