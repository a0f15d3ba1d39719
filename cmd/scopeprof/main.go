package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"scopeprof/internal/version"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "scopeprof",
		Short:        "Inline scope profiler demos and reports",
		Long:         `scopeprof runs instrumented workloads and renders their scope profiles as tables, traces or pprof`,
		Version:      version.Version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().String("config", "", "load settings from a .toml or .yaml file")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (trace|debug|info|warn|error|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information of the CLI itself")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a Go CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a Go heap profile to file")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime execution trace to file")
	return rootCmd
}

// main builds the command tree and executes it. If execution fails, the
// process exits with status code 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
