package profiler

import (
	"fmt"
	"io"
	"strings"
	"time"

	"fortio.org/safecast"

	"scopeprof/internal/pathtree"
	"scopeprof/internal/trace"
)

// TraceOptions configures WriteTrace.
type TraceOptions struct {
	Category string
	Object   bool // wrap in {"traceEvents": [...]}
}

// RenderTrace writes the current state as Trace Event Format JSON.
func (p *Profiler) RenderTrace(w io.Writer) error {
	if !p.Enabled() {
		return nil
	}
	return p.Snapshot().WriteTrace(w, TraceOptions{Category: p.opts.Category, Object: p.opts.TraceObject})
}

// WriteTrace writes s as trace events, one lane per Thread of s. Each lane is
// laid out on a synthetic timeline: an internal node opens at the cursor, the
// cursor advances by its self time, its children follow and the node closes
// at the cursor. Leaves are complete events lasting their self time. Spans
// therefore never overlap, whatever the real interleaving was.
func (s *Snapshot) WriteTrace(w io.Writer, opts TraceOptions) error {
	if opts.Category == "" {
		opts.Category = DefaultCategory
	}
	format := trace.FormatArray
	if opts.Object {
		format = trace.FormatObject
	}
	tw := trace.NewWriter(w, format)

	pid, err := safecast.Conv[int64](s.PID)
	if err != nil {
		return fmt.Errorf("profiler: pid %d: %w", s.PID, err)
	}
	grand := s.GrandTotal()

	var emitErr error
	emit := func(ev trace.Event, smp *Sample, tid uint64) {
		if emitErr != nil {
			return
		}
		ev.Category = opts.Category
		ev.PID = pid
		ev.TID = tid
		ev.Color = HeatOf(Percent(selfOf(smp), grand)).String()
		emitErr = tw.Emit(ev)
	}

	for _, th := range s.Threads {
		root := pathtree.New[*Sample](treeRoot)
		for i := range th.Samples {
			root.Insert(th.Samples[i].Path).Value = &th.Samples[i]
		}
		var cursor time.Duration
		for _, top := range root.Children {
			top.Walk(
				func(n *pathtree.Node[*Sample]) {
					self := selfOf(n.Value)
					emit(trace.Complete(traceName(n.Label), cursor.Microseconds(), self.Microseconds()), n.Value, th.ID)
					cursor += self
				},
				func(n *pathtree.Node[*Sample]) {
					emit(trace.Begin(traceName(n.Label), cursor.Microseconds()), n.Value, th.ID)
					cursor += selfOf(n.Value)
				},
				func(n *pathtree.Node[*Sample]) {
					emit(trace.End(traceName(n.Label), cursor.Microseconds()), n.Value, th.ID)
				},
			)
		}
	}
	if emitErr != nil {
		return emitErr
	}
	return tw.Close()
}

func selfOf(s *Sample) time.Duration {
	if s == nil {
		return 0
	}
	return s.Self
}

// traceName normalizes path separators so file names in labels read the
// same on every platform.
func traceName(label string) string {
	return strings.ReplaceAll(label, `\`, "/")
}
