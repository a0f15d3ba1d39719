package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"scopeprof/profiler"
)

// stdoutPath selects standard output as the report sink.
const stdoutPath = "-"

var formatExt = map[profiler.Format]string{
	profiler.FormatText:     ".txt",
	profiler.FormatCSV:      ".csv",
	profiler.FormatTSV:      ".tsv",
	profiler.FormatMarkdown: ".md",
	profiler.FormatChrome:   ".json",
	profiler.FormatPprof:    ".pb.gz",
}

// reportPath returns where the report in format f goes. With several
// formats, a file output is used as a base name and each report gets the
// extension of its format.
func reportPath(output string, f profiler.Format, multi bool) string {
	if output == "" || output == stdoutPath || !multi {
		if output == "" {
			return stdoutPath
		}
		return output
	}
	base := output
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + formatExt[f]
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openReport opens the sink for path. Standard output is never closed.
func openReport(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == stdoutPath {
		return nopCloser{stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return f, nil
}

// writeReport renders snap in format f to path.
func writeReport(snap *profiler.Snapshot, f profiler.Format, opts profiler.Options, path string, stdout io.Writer) (err error) {
	if f == profiler.FormatPprof && path == stdoutPath {
		if file, ok := stdout.(*os.File); ok && isTerminal(file) {
			return errors.New("refusing to write a binary pprof report to a terminal; use --output")
		}
	}
	w, err := openReport(path, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close report: %w", closeErr)
		}
	}()
	return snap.Write(w, f, opts)
}
