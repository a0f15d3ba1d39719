package profiler

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultMaxDepth   = 512
	DefaultMaxSamples = 4096
	DefaultBarWidth   = 10
	DefaultCategory   = "CPU,SCOPEPROF"
)

// Clock supplies timestamps. The default reads the monotonic wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures a Profiler. The zero value is usable.
type Options struct {
	// MaxDepth bounds the number of open scopes per goroutine.
	MaxDepth int
	// MaxSamples bounds the number of distinct paths across all goroutines.
	MaxSamples int
	// BarWidth is the width of the utilization meter in tabular reports.
	BarWidth int
	// Category is the "cat" field of trace events.
	Category string
	// TraceObject wraps trace events in {"traceEvents": [...]} instead of
	// writing a bare array.
	TraceObject bool
	// Highlight, if set, decorates the utilization meter of each row,
	// e.g. with terminal colors.
	Highlight func(h Heat, meter string) string
	// Clock overrides the time source.
	Clock Clock
	// Logger receives debug events. Nil disables logging.
	Logger *zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxSamples <= 0 {
		o.MaxSamples = DefaultMaxSamples
	}
	if o.BarWidth <= 0 {
		o.BarWidth = DefaultBarWidth
	}
	if o.Category == "" {
		o.Category = DefaultCategory
	}
	if o.Clock == nil {
		o.Clock = systemClock{}
	}
	return o
}
