//go:build !scopeprof_off

package profiler

import (
	"bytes"
	"strings"
	"testing"
)

func TestDefaultProfiler(t *testing.T) {
	if !Compiled {
		t.Fatal("Compiled = false in a default build")
	}
	Clear()
	t.Cleanup(Clear)

	func() {
		defer Here().Exit()
		Time("inner", func() {})
	}()
	Pause(true)
	if !IsPaused() {
		t.Fatal("IsPaused = false after Pause(true)")
	}
	Pause(false)

	var buf bytes.Buffer
	if err := Render(&buf, FormatText); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "TestDefaultProfiler.func") || !strings.Contains(out, "+-inner") {
		t.Fatalf("unexpected report:\n%s", out)
	}
}
