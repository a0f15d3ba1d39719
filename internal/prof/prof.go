// Package prof controls the Go runtime profilers that the CLI can run next
// to the scope profiler: CPU profile, heap profile and execution trace.
package prof

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Config names the output files; an empty path disables that profiler.
type Config struct {
	CPUProfile   string
	MemProfile   string
	RuntimeTrace string
}

// Enabled reports whether any profiler is requested.
func (c Config) Enabled() bool {
	return c.CPUProfile != "" || c.MemProfile != "" || c.RuntimeTrace != ""
}

// Capture is a set of running runtime profilers.
type Capture struct {
	cfg       Config
	cpuFile   *os.File
	traceFile *os.File
	stopped   bool
}

// Start enables the profilers requested by cfg. On error nothing is left
// running.
func Start(cfg Config) (*Capture, error) {
	c := &Capture{cfg: cfg}
	if cfg.CPUProfile != "" {
		f, err := startCPU(cfg.CPUProfile)
		if err != nil {
			return nil, fmt.Errorf("failed to start cpu profile: %w", err)
		}
		c.cpuFile = f
	}
	if cfg.RuntimeTrace != "" {
		f, err := startTrace(cfg.RuntimeTrace)
		if err != nil {
			// ensure cpu profile is stopped on error
			c.stopCPU()
			return nil, fmt.Errorf("failed to start trace: %w", err)
		}
		c.traceFile = f
	}
	return c, nil
}

// Stop ends the running profilers and writes the heap profile. It is safe to
// call more than once; only the first call does anything.
func (c *Capture) Stop() error {
	if c == nil || c.stopped {
		return nil
	}
	c.stopped = true

	errs := []error{c.stopTrace(), c.stopCPU()}
	if c.cfg.MemProfile != "" {
		if err := writeMem(c.cfg.MemProfile); err != nil {
			errs = append(errs, fmt.Errorf("failed to write heap profile: %w", err))
		}
	}
	return errors.Join(errs...)
}

func startCPU(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func (c *Capture) stopCPU() error {
	if c.cpuFile == nil {
		return nil
	}
	pprof.StopCPUProfile()
	err := c.cpuFile.Close()
	c.cpuFile = nil
	return err
}

func startTrace(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := trace.Start(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func (c *Capture) stopTrace() error {
	if c.traceFile == nil {
		return nil
	}
	trace.Stop()
	err := c.traceFile.Close()
	c.traceFile = nil
	return err
}

// writeMem captures a heap profile to path.
func writeMem(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	runtime.GC()
	return pprof.WriteHeapProfile(f)
}
