// Package demo holds small instrumented workloads used by the CLI to show
// the profiler at work.
package demo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"scopeprof/profiler"
)

// Workload names a demo program.
type Workload string

const (
	WorkloadNested    Workload = "nested"    // three nested loops
	WorkloadRecursion Workload = "recursion" // recursive descent
	WorkloadFrames    Workload = "frames"    // frame loop cleared every frame
	WorkloadWorkers   Workload = "workers"   // concurrent goroutines
)

// Workloads lists every known workload.
var Workloads = []Workload{WorkloadNested, WorkloadRecursion, WorkloadFrames, WorkloadWorkers}

// ParseWorkload converts a string to a Workload.
func ParseWorkload(s string) (Workload, error) {
	w := Workload(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Workloads {
		if w == known {
			return w, nil
		}
	}
	names := make([]string, len(Workloads))
	for i, known := range Workloads {
		names[i] = string(known)
	}
	return "", fmt.Errorf("invalid workload: %q (expected: %s)", s, strings.Join(names, "|"))
}

// Config parameterizes a workload run.
type Config struct {
	Workload Workload
	// Counter is the loop count of nested and workers, and the depth of
	// recursion.
	Counter int
	// Unit is the simulated cost of one unit of work.
	Unit time.Duration
	// Frames is the number of frames of the frames workload.
	Frames int
	// Workers is the number of goroutines of the workers workload.
	Workers int
	// Sleep performs one unit of work. Defaults to time.Sleep.
	Sleep func(time.Duration)
	// Logger receives progress events.
	Logger zerolog.Logger
}

// DefaultConfig returns the configuration of the classic nested demo.
func DefaultConfig() Config {
	return Config{
		Workload: WorkloadNested,
		Counter:  10,
		Unit:     12500 * time.Microsecond,
		Frames:   3,
		Workers:  4,
		Logger:   zerolog.Nop(),
	}
}

func (c Config) validate() error {
	switch {
	case c.Counter < 0:
		return fmt.Errorf("counter must be >= 0, got %d", c.Counter)
	case c.Unit < 0:
		return fmt.Errorf("unit must be >= 0, got %s", c.Unit)
	case c.Frames < 1 && c.Workload == WorkloadFrames:
		return fmt.Errorf("frames must be >= 1, got %d", c.Frames)
	case c.Workers < 1 && c.Workload == WorkloadWorkers:
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	return nil
}

// runner carries the state shared by the workload functions.
type runner struct {
	ctx   context.Context
	p     *profiler.Profiler
	cfg   Config
	sleep func(time.Duration)
}

// work performs one unit of work, or fails if ctx is done.
func (r *runner) work() error {
	if err := r.ctx.Err(); err != nil {
		return err
	}
	r.sleep(r.cfg.Unit)
	return nil
}

// Run executes the workload selected by cfg, recording into the profiler
// attached to ctx.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	r := &runner{ctx: ctx, p: profiler.FromContext(ctx), cfg: cfg, sleep: cfg.Sleep}
	if r.sleep == nil {
		r.sleep = time.Sleep
	}

	start := time.Now()
	cfg.Logger.Debug().Str("workload", string(cfg.Workload)).Int("counter", cfg.Counter).Msg("workload started")

	var err error
	switch cfg.Workload {
	case WorkloadNested:
		err = r.nested()
	case WorkloadRecursion:
		err = r.recursion()
	case WorkloadFrames:
		err = r.frames()
	case WorkloadWorkers:
		err = r.workers()
	default:
		err = fmt.Errorf("invalid workload: %q", cfg.Workload)
	}
	if err != nil {
		return fmt.Errorf("workload %s: %w", cfg.Workload, err)
	}
	cfg.Logger.Debug().Str("workload", string(cfg.Workload)).Dur("elapsed", time.Since(start)).Msg("workload finished")
	return nil
}
