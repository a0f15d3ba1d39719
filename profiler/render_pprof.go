package profiler

import (
	"fmt"
	"io"
	"math"

	"fortio.org/safecast"
	"github.com/google/pprof/profile"
)

// RenderPprof writes the current state as a gzipped pprof profile.
func (p *Profiler) RenderPprof(w io.Writer) error {
	if !p.Enabled() {
		return nil
	}
	return p.Snapshot().WritePprof(w)
}

// WritePprof writes s as a pprof profile with two sample types, hits/count
// and wall/nanoseconds. Every merged path becomes one sample whose stack is
// the path, innermost label first, valued with its self time.
func (s *Snapshot) WritePprof(w io.Writer) error {
	prof := s.pprofProfile()
	if err := prof.CheckValid(); err != nil {
		return fmt.Errorf("profiler: build pprof: %w", err)
	}
	if err := prof.Write(w); err != nil {
		return fmt.Errorf("profiler: write pprof: %w", err)
	}
	return nil
}

func (s *Snapshot) pprofProfile() *profile.Profile {
	prof := &profile.Profile{
		SampleType: []*profile.ValueType{
			{Type: "hits", Unit: "count"},
			{Type: "wall", Unit: "nanoseconds"},
		},
		DefaultSampleType: "wall",
		PeriodType:        &profile.ValueType{Type: "wall", Unit: "nanoseconds"},
		Period:            1,
	}
	if !s.Taken.IsZero() {
		prof.TimeNanos = s.Taken.UnixNano()
	}

	locations := make(map[string]*profile.Location)
	location := func(label string) *profile.Location {
		if loc, ok := locations[label]; ok {
			return loc
		}
		id := uint64(len(locations) + 1)
		fn := &profile.Function{ID: id, Name: label, SystemName: label}
		loc := &profile.Location{ID: id, Line: []profile.Line{{Function: fn}}}
		prof.Function = append(prof.Function, fn)
		prof.Location = append(prof.Location, loc)
		locations[label] = loc
		return loc
	}

	for _, smp := range s.Merged() {
		stack := make([]*profile.Location, 0, len(smp.Path))
		for i := len(smp.Path) - 1; i >= 0; i-- {
			stack = append(stack, location(smp.Path[i]))
		}
		prof.Sample = append(prof.Sample, &profile.Sample{
			Location: stack,
			Value:    []int64{clampInt64(smp.Hits), int64(smp.Self)},
		})
	}
	return prof
}

func clampInt64(v uint64) int64 {
	n, err := safecast.Conv[int64](v)
	if err != nil {
		return math.MaxInt64
	}
	return n
}
