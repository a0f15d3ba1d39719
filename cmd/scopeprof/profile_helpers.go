package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scopeprof/internal/prof"
)

// setupProfiling inspects persistent profiling flags and starts the
// requested runtime profilers. It returns a cleanup function that is safe to
// call multiple times.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	root := cmd.Root()

	cpuProfile, err := root.PersistentFlags().GetString("cpu-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memProfile, err := root.PersistentFlags().GetString("mem-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	tracePath, err := root.PersistentFlags().GetString("runtime-trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}

	cfg := prof.Config{CPUProfile: cpuProfile, MemProfile: memProfile, RuntimeTrace: tracePath}
	if !cfg.Enabled() {
		return func() {}, nil
	}
	capture, err := prof.Start(cfg)
	if err != nil {
		return nil, err
	}
	cleanup := func() {
		if err := capture.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profiling: %v\n", err)
		}
	}
	return cleanup, nil
}
