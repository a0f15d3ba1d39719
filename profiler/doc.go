// Package profiler is an inline instrumentation profiler.
//
// Application code marks scopes (functions, loop bodies) and the profiler
// aggregates wall-clock cost per call path, then renders tabular or trace
// viewer reports to a caller-supplied io.Writer.
//
// # Usage
//
//	p := profiler.New(profiler.Options{})
//
//	func work(p *profiler.Profiler) {
//		defer p.Here().Exit() // labeled "pkg.work (file.go:12)"
//		for i := 0; i < n; i++ {
//			s := p.Enter("iteration")
//			step()
//			s.Exit()
//		}
//	}
//
//	p.Render(os.Stdout, profiler.FormatText)
//	p.Render(file, profiler.FormatChrome) // chrome://tracing, Perfetto
//	p.Clear()                             // e.g. at the start of a frame
//
// # Paths
//
// Every scope is identified by its path: the labels of all open scopes of the
// same goroutine, outermost first. Each distinct path owns one sample with
// its hit count and inclusive time. Recursion produces longer paths
// ("F", "F;F", ...) rather than merging into one sample.
//
// # Accounting
//
// Reports work on a point-in-time copy of the registry. Scopes still open at
// that instant are closed on the copy. Self (exclusive) time is derived from
// inclusive time by subtracting every descendant path.
//
// # Goroutines
//
// Stacks are partitioned by goroutine. When a goroutine closes its outermost
// scope, its samples are folded into a profiler-wide pool, so short-lived
// goroutines cost nothing once done. Tabular reports merge everything by
// path; trace reports draw the pool as lane (tid) 0 and every goroutine with
// open scopes as a lane of its own.
//
// # Contract violations
//
// Exiting a scope out of order, exiting it twice, nesting deeper than
// Options.MaxDepth or creating more than Options.MaxSamples distinct paths
// panics with an error wrapping ErrUnbalanced, ErrTooDeep or ErrTooManyPaths.
//
// # Disabling
//
// Disabled and Nop return a profiler whose methods do nothing. Building with
// the scopeprof_off tag turns the package-level functions into no-ops.
package profiler
