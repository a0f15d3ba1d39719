package profiler

import "testing"

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"TXT", FormatText, false},
		{"csv", FormatCSV, false},
		{"tsv", FormatTSV, false},
		{"md", FormatMarkdown, false},
		{"markdown", FormatMarkdown, false},
		{"chrome", FormatChrome, false},
		{"json", FormatChrome, false},
		{"pprof", FormatPprof, false},
		{"xml", FormatText, true},
	}
	for _, tc := range cases {
		got, err := ParseFormat(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseFormat(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatStringRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatText, FormatCSV, FormatTSV, FormatMarkdown, FormatChrome, FormatPprof} {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Fatalf("ParseFormat(%q) = %v, %v", f.String(), got, err)
		}
	}
}
