package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"scopeprof/internal/demo"
	"scopeprof/internal/logging"
	"scopeprof/profiler"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags]",
		Short: "Run an instrumented workload and report its profile",
		Long:  `Run one of the built-in instrumented workloads and render the collected scope profile in one or more formats`,
		Args:  cobra.NoArgs,
		RunE:  runWorkload,
	}
	cmd.Flags().String("workload", string(demo.WorkloadNested), "workload to run (nested|recursion|frames|workers)")
	cmd.Flags().Int("counter", 10, "loop count, or recursion depth")
	cmd.Flags().Duration("unit", demo.DefaultConfig().Unit, "simulated cost of one unit of work")
	cmd.Flags().Int("frames", 3, "number of frames of the frames workload")
	cmd.Flags().Int("workers", 4, "number of goroutines of the workers workload")
	cmd.Flags().StringSliceP("format", "f", []string{"text"}, "report formats (text|csv|tsv|markdown|chrome|pprof)")
	cmd.Flags().StringP("output", "o", stdoutPath, "report file, or - for stdout")
	cmd.Flags().Int("bar-width", profiler.DefaultBarWidth, "width of the utilization meter")
	cmd.Flags().Bool("trace-object", false, `wrap trace events in {"traceEvents": [...]}`)
	cmd.Flags().Int("max-depth", profiler.DefaultMaxDepth, "maximum scope nesting per goroutine")
	cmd.Flags().Int("max-samples", profiler.DefaultMaxSamples, "maximum number of distinct scope paths")
	return cmd
}

func runWorkload(cmd *cobra.Command, args []string) error {
	timer, err := setupTimings(cmd)
	if err != nil {
		return err
	}
	defer printTimings(cmd.ErrOrStderr(), timer)
	defer timer.Enter("run").Exit()

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	logger, err := setupLogger(cmd)
	if err != nil {
		return err
	}

	var settings runSettings
	timer.Time("settings", func() { settings, err = resolveSettings(cmd) })
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	useColor, err := colorEnabled(cmd, stdout)
	if err != nil {
		return err
	}
	if useColor {
		settings.Profiler.Highlight = heatHighlighter()
	}
	settings.Profiler.Logger = &logger
	settings.Demo.Logger = logger

	p := profiler.New(settings.Profiler)
	ctx := profiler.WithProfiler(cmd.Context(), p)
	timer.Time("workload", func() { err = demo.Run(ctx, settings.Demo) })
	if err != nil {
		return err
	}

	defer timer.Enter("report").Exit()
	snap := p.Snapshot()
	multi := len(settings.Formats) > 1
	for _, f := range settings.Formats {
		opts := p.Options()
		path := reportPath(settings.Output, f, multi)
		if path != stdoutPath {
			opts.Highlight = nil
		}
		if err := writeReport(snap, f, opts, path, stdout); err != nil {
			return fmt.Errorf("%s report: %w", f, err)
		}
		logger.Info().Str("format", f.String()).Str("path", path).Msg("report written")
	}
	return nil
}

func setupLogger(cmd *cobra.Command) (zerolog.Logger, error) {
	level, err := cmd.Root().PersistentFlags().GetString("log-level")
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to get log-level flag: %w", err)
	}
	if _, err := logging.ParseLevel(level); err != nil {
		return zerolog.Nop(), err
	}
	stderr := cmd.ErrOrStderr()
	useColor, err := colorEnabled(cmd, stderr)
	if err != nil {
		return zerolog.Nop(), err
	}
	f, isFile := stderr.(*os.File)
	return logging.NewWithComponent(logging.Config{
		Level:   level,
		Pretty:  isFile && isTerminal(f),
		NoColor: !useColor,
		Output:  stderr,
	}, "scopeprof"), nil
}

// resolveSettings merges the defaults, the --config file and the flags that
// were set explicitly, in that order.
func resolveSettings(cmd *cobra.Command) (runSettings, error) {
	s := defaultSettings()

	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return s, fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return s, err
		}
		if err := cfg.apply(&s); err != nil {
			return s, fmt.Errorf("%s: %w", configPath, err)
		}
	}

	if err := applyFlags(cmd.Flags(), &s); err != nil {
		return s, err
	}
	return s, nil
}

// applyFlags overlays the flags set on the command line onto s.
func applyFlags(flags *pflag.FlagSet, s *runSettings) error {
	if flags.Changed("workload") {
		name, _ := flags.GetString("workload")
		w, err := demo.ParseWorkload(name)
		if err != nil {
			return err
		}
		s.Demo.Workload = w
	}
	if flags.Changed("format") {
		names, _ := flags.GetStringSlice("format")
		formats, err := parseFormats(names)
		if err != nil {
			return err
		}
		s.Formats = formats
	}
	if flags.Changed("unit") {
		s.Demo.Unit, _ = flags.GetDuration("unit")
	}
	if flags.Changed("output") {
		s.Output, _ = flags.GetString("output")
	}
	if flags.Changed("trace-object") {
		s.Profiler.TraceObject, _ = flags.GetBool("trace-object")
	}

	ints := map[string]*int{
		"counter":     &s.Demo.Counter,
		"frames":      &s.Demo.Frames,
		"workers":     &s.Demo.Workers,
		"bar-width":   &s.Profiler.BarWidth,
		"max-depth":   &s.Profiler.MaxDepth,
		"max-samples": &s.Profiler.MaxSamples,
	}
	for name, dst := range ints {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetInt(name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*dst = v
	}
	return nil
}
