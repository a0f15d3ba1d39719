package profiler

import (
	"fmt"
	"io"
	"strings"
)

// Format selects a report layout for Render.
type Format uint8

const (
	FormatText     Format = iota // space separated table
	FormatCSV                    // comma separated table
	FormatTSV                    // tab separated table
	FormatMarkdown               // markdown table with header
	FormatChrome                 // Trace Event Format JSON
	FormatPprof                  // gzipped profile.proto
)

// String returns the string representation of Format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	case FormatMarkdown:
		return "markdown"
	case FormatChrome:
		return "chrome"
	case FormatPprof:
		return "pprof"
	default:
		return "unknown"
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "txt", "ascii":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "tsv":
		return FormatTSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "chrome", "trace", "json":
		return FormatChrome, nil
	case "pprof":
		return FormatPprof, nil
	default:
		return FormatText, fmt.Errorf("invalid report format: %q (expected: text|csv|tsv|markdown|chrome|pprof)", s)
	}
}

// tableLayout returns the delimiters of a tabular format.
func (f Format) tableLayout() (TableOptions, bool) {
	switch f {
	case FormatText:
		return TableOptions{Delimiter: " ", Terminator: "\n"}, true
	case FormatCSV:
		return TableOptions{Delimiter: ",", Terminator: "\n"}, true
	case FormatTSV:
		return TableOptions{Delimiter: "\t", Terminator: "\n"}, true
	case FormatMarkdown:
		return TableOptions{Delimiter: "|", Terminator: "\n", Markdown: true}, true
	}
	return TableOptions{}, false
}

// Render writes a report of the current state in format f.
func (p *Profiler) Render(w io.Writer, f Format) error {
	if !p.Enabled() {
		return nil
	}
	return p.Snapshot().Write(w, f, p.opts)
}

// Write renders s in format f, taking meter width, highlighting and trace
// settings from opts.
func (s *Snapshot) Write(w io.Writer, f Format, opts Options) error {
	opts = opts.withDefaults()
	if table, ok := f.tableLayout(); ok {
		table.BarWidth = opts.BarWidth
		table.Highlight = opts.Highlight
		return s.WriteTable(w, table)
	}
	switch f {
	case FormatChrome:
		return s.WriteTrace(w, TraceOptions{Category: opts.Category, Object: opts.TraceObject})
	case FormatPprof:
		return s.WritePprof(w)
	}
	return fmt.Errorf("profiler: unsupported format %d", f)
}
