package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"scopeprof/profiler"
)

// colorEnabled resolves the --color flag for output going to w.
func colorEnabled(cmd *cobra.Command, w io.Writer) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		return ok && isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid color mode: %q (expected: auto|on|off)", colorFlag)
	}
}

var heatColors = map[profiler.Heat]*color.Color{
	profiler.HeatGood:     color.New(color.FgGreen),
	profiler.HeatBad:      color.New(color.FgYellow),
	profiler.HeatTerrible: color.New(color.FgRed, color.Bold),
}

// heatHighlighter colors utilization meters by heat.
func heatHighlighter() func(profiler.Heat, string) string {
	return func(h profiler.Heat, meter string) string {
		c, ok := heatColors[h]
		if !ok {
			return meter
		}
		c.EnableColor()
		return c.Sprint(meter)
	}
}
