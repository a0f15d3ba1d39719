package main

import (
	"testing"

	"scopeprof/profiler"
)

func TestReportPath(t *testing.T) {
	cases := []struct {
		output string
		format profiler.Format
		multi  bool
		want   string
	}{
		{"", profiler.FormatText, false, "-"},
		{"-", profiler.FormatChrome, true, "-"},
		{"report.txt", profiler.FormatCSV, false, "report.txt"},
		{"out/report.txt", profiler.FormatCSV, true, "out/report.csv"},
		{"out/report", profiler.FormatPprof, true, "out/report.pb.gz"},
		{"trace", profiler.FormatChrome, true, "trace.json"},
	}
	for _, tc := range cases {
		if got := reportPath(tc.output, tc.format, tc.multi); got != tc.want {
			t.Fatalf("reportPath(%q, %s, %v) = %q, want %q", tc.output, tc.format, tc.multi, got, tc.want)
		}
	}
}
