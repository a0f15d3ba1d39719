package profiler

import (
	"slices"
	"strings"
	"sync"
	"time"

	"scopeprof/internal/goid"
)

// thread is the partition of one goroutine: its scope stack and its registry.
type thread struct {
	id uint64

	mu    sync.Mutex
	stack []frame
	reg   registry
	dead  bool // removed from the profiler by retire or Clear
}

// frame is one open scope. It carries the start of the current measurement
// and the profiler pause offset at that instant.
type frame struct {
	s         *sample
	start     time.Time
	pauseMark time.Duration
}

func newThread(id uint64) *thread {
	return &thread{id: id, reg: newRegistry()}
}

// elapsed is the unpaused time since f started.
func (f frame) elapsed(now time.Time, pauseMark time.Duration) time.Duration {
	d := now.Sub(f.start) - (pauseMark - f.pauseMark)
	if d < 0 {
		return 0
	}
	return d
}

func sortThreads(ths []*thread) {
	slices.SortFunc(ths, func(a, b *thread) int {
		switch {
		case a.id < b.id:
			return -1
		case a.id > b.id:
			return 1
		}
		return 0
	})
}

// Scope is the handle of an open scope. A nil Scope is valid and Exit on it
// does nothing.
type Scope struct {
	p     *Profiler
	th    *thread
	depth int
	done  bool
}

func (p *Profiler) enter(label string) *Scope {
	if strings.Contains(label, keySep) {
		violation(ErrBadLabel, "label %q contains NUL", label)
	}
	now := p.opts.Clock.Now()
	for {
		th, mark := p.thread(now)
		if s, ok := p.push(th, label, now, mark); ok {
			return s
		}
	}
}

// push opens label on th. It fails only if th was retired by a concurrent
// Clear, in which case the caller fetches a fresh partition.
func (p *Profiler) push(th *thread, label string, now time.Time, mark time.Duration) (*Scope, bool) {
	th.mu.Lock()
	defer th.mu.Unlock()
	if th.dead {
		return nil, false
	}

	depth := len(th.stack)
	if depth >= p.opts.MaxDepth {
		violation(ErrTooDeep, "depth %d exceeds limit %d entering %q", depth+1, p.opts.MaxDepth, label)
	}
	var parent Path
	if depth > 0 {
		parent = th.stack[depth-1].s.path
	}
	path := parent.Child(label)

	key := path.Key()
	s := th.reg.lookup(key)
	if s == nil {
		p.reserve(key, path)
		s = th.reg.create(path)
	}
	s.hits++
	th.stack = append(th.stack, frame{s: s, start: now, pauseMark: mark})
	return &Scope{p: p, th: th, depth: depth}, true
}

// Exit closes the scope, adding its unpaused elapsed time to the sample.
// Scopes must be closed innermost first. Closing the outermost scope of a
// goroutine hands its samples over to the profiler.
func (s *Scope) Exit() {
	if s == nil {
		return
	}
	if s.exit() {
		s.p.retire(s.th)
	}
}

// exit pops the frame of s and reports whether the stack is now empty.
func (s *Scope) exit() bool {
	now := s.p.opts.Clock.Now()
	mark := s.p.pauseOffset(now)

	th := s.th
	th.mu.Lock()
	defer th.mu.Unlock()

	if s.done {
		violation(ErrUnbalanced, "scope exited twice")
	}
	if len(th.stack) != s.depth+1 {
		violation(ErrUnbalanced, "exit at depth %d with %d scopes open", s.depth+1, len(th.stack))
	}
	f := th.stack[s.depth]
	f.s.total += f.elapsed(now, mark)
	th.stack = th.stack[:s.depth]
	s.done = true
	return s.depth == 0
}

// Depth returns the number of scopes open on the calling goroutine.
func (p *Profiler) Depth() int {
	if !p.Enabled() {
		return 0
	}
	id := goid.Get()
	p.mu.Lock()
	th, ok := p.threads[id]
	p.mu.Unlock()
	if !ok {
		return 0
	}
	th.mu.Lock()
	defer th.mu.Unlock()
	return len(th.stack)
}
