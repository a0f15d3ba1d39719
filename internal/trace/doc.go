// Package trace encodes Trace Event Format documents, the JSON dialect read
// by chrome://tracing, Perfetto and speedscope.
//
// # Events
//
// Only duration events are produced:
//
//   - PhaseComplete ("X"): a span with a start timestamp and a duration
//   - PhaseBegin ("B") / PhaseEnd ("E"): an open/close pair that nests the
//     events emitted between them
//
// Timestamps and durations are integers in microseconds.
//
// # Output
//
// A Writer streams events to an io.Writer as they are emitted, either as a
// bare JSON array (FormatArray) or wrapped in a {"traceEvents": [...]}
// object (FormatObject):
//
//	tw := trace.NewWriter(w, trace.FormatArray)
//	tw.Emit(trace.Complete("parse", 0, 1500))
//	err := tw.Close()
package trace
