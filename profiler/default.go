//go:build !scopeprof_off

package profiler

import "io"

// Compiled reports whether the package-level API records anything. It is
// false when built with the scopeprof_off tag.
const Compiled = true

// Default backs the package-level functions.
var Default = New(Options{})

// Enter opens a scope on Default.
func Enter(label string) *Scope { return Default.Enter(label) }

// Here opens a scope on Default labeled with the calling function.
func Here() *Scope {
	if !Default.Enabled() {
		return nil
	}
	return Default.enter(callerLabel(2))
}

// Time runs fn inside a scope of Default.
func Time(label string, fn func()) { Default.Time(label, fn) }

// Render writes a report of Default.
func Render(w io.Writer, f Format) error { return Default.Render(w, f) }

// RenderText writes a tabular report of Default.
func RenderText(w io.Writer, delim, feed string) error { return Default.RenderText(w, delim, feed) }

// RenderTrace writes a trace report of Default.
func RenderTrace(w io.Writer) error { return Default.RenderTrace(w) }

// Pause pauses or resumes Default.
func Pause(paused bool) { Default.Pause(paused) }

// IsPaused reports whether Default is paused.
func IsPaused() bool { return Default.IsPaused() }

// Clear clears Default.
func Clear() { Default.Clear() }
