package profiler

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"scopeprof/internal/goid"
)

// Profiler owns the scope stacks and the sample registry. All methods are
// safe for concurrent use; a nil or disabled Profiler does nothing.
type Profiler struct {
	opts    Options
	log     zerolog.Logger
	enabled bool
	pid     int

	mu          sync.Mutex
	threads     map[uint64]*thread // goroutines with open scopes
	done        registry           // samples of retired partitions
	paused      bool
	pausedSince time.Time
	pausedTotal time.Duration

	// keys is the set of distinct paths bounded by MaxSamples. keysMu is
	// taken after any partition lock and never held while acquiring one.
	keysMu sync.Mutex
	keys   map[PathKey]struct{}
}

// New creates an enabled Profiler.
func New(opts Options) *Profiler {
	opts = opts.withDefaults()
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "profiler").Logger()
	}
	return &Profiler{
		opts:    opts,
		log:     log,
		enabled: true,
		pid:     os.Getpid(),
		threads: make(map[uint64]*thread),
		done:    newRegistry(),
		keys:    make(map[PathKey]struct{}),
	}
}

// Disabled returns a Profiler whose methods are no-ops.
func Disabled() *Profiler { return &Profiler{} }

// Nop is the package-level disabled profiler.
var Nop = Disabled()

// Enabled reports whether p records anything.
func (p *Profiler) Enabled() bool { return p != nil && p.enabled }

// Options returns the effective options of p.
func (p *Profiler) Options() Options {
	if p == nil {
		return Options{}
	}
	return p.opts
}

// Enter opens a scope labeled label on the calling goroutine and returns its
// handle. The handle must be closed with Exit, normally via defer:
//
//	defer p.Enter("decode").Exit()
func (p *Profiler) Enter(label string) *Scope {
	if !p.Enabled() {
		return nil
	}
	return p.enter(label)
}

// Here opens a scope labeled with the calling function and its file:line.
func (p *Profiler) Here() *Scope {
	if !p.Enabled() {
		return nil
	}
	return p.enter(callerLabel(2))
}

// Time runs fn inside a scope labeled label.
func (p *Profiler) Time(label string, fn func()) {
	defer p.Enter(label).Exit()
	fn()
}

func callerLabel(skip int) string {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}
	}
	return fmt.Sprintf("%s (%s:%d)", name, filepath.Base(file), line)
}

// thread returns the partition of the calling goroutine, creating it on
// first use, together with the pause offset at now.
func (p *Profiler) thread(now time.Time) (*thread, time.Duration) {
	id := goid.Get()

	p.mu.Lock()
	defer p.mu.Unlock()

	th, ok := p.threads[id]
	if !ok {
		th = newThread(id)
		p.threads[id] = th
		p.log.Trace().Uint64("tid", id).Msg("partition created")
	}
	return th, p.pauseOffsetLocked(now)
}

// reserve registers key as a distinct path. Paths already known to the
// profiler, from any goroutine, cost nothing.
func (p *Profiler) reserve(key PathKey, path Path) {
	p.keysMu.Lock()
	defer p.keysMu.Unlock()
	if _, ok := p.keys[key]; ok {
		return
	}
	if n := len(p.keys) + 1; n > p.opts.MaxSamples {
		violation(ErrTooManyPaths, "%d paths exceeds limit %d at %q", n, p.opts.MaxSamples, path.String())
	}
	p.keys[key] = struct{}{}
	p.log.Trace().Str("path", path.String()).Int("paths", len(p.keys)).Msg("path registered")
}

// retire folds the samples of th into the profiler registry and drops the
// partition, once the goroutine has no scope open.
func (p *Profiler) retire(th *thread) {
	p.mu.Lock()
	defer p.mu.Unlock()
	th.mu.Lock()
	defer th.mu.Unlock()

	if th.dead || len(th.stack) > 0 {
		return
	}
	p.done.fold(th.reg)
	th.dead = true
	delete(p.threads, th.id)
}

// threadListLocked returns the partitions ordered by id.
func (p *Profiler) threadListLocked() []*thread {
	out := make([]*thread, 0, len(p.threads))
	for _, th := range p.threads {
		out = append(out, th)
	}
	sortThreads(out)
	return out
}
