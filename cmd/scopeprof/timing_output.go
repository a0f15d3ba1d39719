package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"scopeprof/profiler"
)

// setupTimings returns the profiler that times the CLI phases: a live one
// when --timings is set, Nop otherwise.
func setupTimings(cmd *cobra.Command) (*profiler.Profiler, error) {
	on, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if !on {
		return profiler.Nop, nil
	}
	return profiler.New(profiler.Options{MaxDepth: 8, MaxSamples: 64}), nil
}

func printTimings(out io.Writer, timer *profiler.Profiler) {
	if out == nil || !timer.Enabled() {
		return
	}
	if _, err := fmt.Fprintln(out, "timings:"); err != nil {
		panic(err)
	}
	if err := timer.RenderText(out, " ", "\n"); err != nil {
		panic(err)
	}
}
