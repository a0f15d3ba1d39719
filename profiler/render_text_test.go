package profiler

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTextRows(t *testing.T) {
	p, clk := newTestProfiler(t, Options{})
	scenarioAB(p, clk)

	var buf bytes.Buffer
	require.NoError(t, p.RenderText(&buf, " ", "\n"))

	want := "" +
		"   1.   +-A   [===.......] 33.33% CPU (    5.000ms)     1 hits\n" +
		"   2.     +-B [======....] 66.67% CPU (   10.000ms)     1 hits\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderCSV(t *testing.T) {
	p, clk := newTestProfiler(t, Options{})
	scenarioAB(p, clk)

	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf, FormatCSV))

	want := "" +
		"   1.,  +-A  ,[===.......],33.33% CPU,(    5.000ms),    1 hits\n" +
		"   2.,    +-B,[======....],66.67% CPU,(   10.000ms),    1 hits\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderTSVAndMarkdown(t *testing.T) {
	p, clk := newTestProfiler(t, Options{})
	scenarioAB(p, clk)

	var tsv bytes.Buffer
	require.NoError(t, p.Render(&tsv, FormatTSV))
	lines := strings.Split(strings.TrimSuffix(tsv.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, strings.Split(lines[0], "\t"), 6)

	var md bytes.Buffer
	require.NoError(t, p.Render(&md, FormatMarkdown))
	lines = strings.Split(strings.TrimSuffix(md.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "|#|scope|meter|cpu|self|hits|", lines[0])
	assert.Equal(t, "|---|---|---|---|---|---|", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "|   1.|"), lines[2])
	assert.True(t, strings.HasSuffix(lines[3], "|    1 hits|"), lines[3])
}

func TestRenderMarkdownCellsLineUp(t *testing.T) {
	p, clk := newTestProfiler(t, Options{})
	a := p.Enter("A")
	b := p.Enter("B")
	p.Time("D", func() { clk.Advance(time.Millisecond) })
	b.Exit()
	p.Time("C", func() { clk.Advance(time.Millisecond) })
	a.Exit()

	var md bytes.Buffer
	require.NoError(t, p.Render(&md, FormatMarkdown))
	lines := strings.Split(strings.TrimSuffix(md.String(), "\n"), "\n")
	require.Len(t, lines, 6)

	cells := func(line string) int {
		return strings.Count(line, "|") - strings.Count(line, `\|`)
	}
	want := cells(lines[0])
	for _, line := range lines[1:] {
		assert.Equal(t, want, cells(line), line)
	}
	assert.Contains(t, lines[3], `\|-B`)
	assert.Contains(t, lines[4], `\| +-D`)
}

func TestRenderIsRepeatable(t *testing.T) {
	p, clk := newTestProfiler(t, Options{})
	scenarioAB(p, clk)

	var first, second bytes.Buffer
	require.NoError(t, p.RenderText(&first, " ", "\n"))
	require.NoError(t, p.RenderText(&second, " ", "\n"))
	assert.Equal(t, first.String(), second.String())
}

func TestRenderWithNothingMeasured(t *testing.T) {
	p, _ := newTestProfiler(t, Options{})

	var empty bytes.Buffer
	require.NoError(t, p.Render(&empty, FormatText))
	assert.Empty(t, empty.String())

	p.Enter("instant").Exit()
	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf, FormatText))
	assert.Contains(t, buf.String(), "[..........]  0.00% CPU (    0.000ms)     1 hits")
}

func TestRenderIncludesOpenScopes(t *testing.T) {
	p, clk := newTestProfiler(t, Options{})
	s := p.Enter("running")
	clk.Advance(2 * time.Millisecond)

	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf, FormatText))
	assert.Contains(t, buf.String(), "100.00% CPU (    2.000ms)")
	s.Exit()
}

func TestRenderHighlight(t *testing.T) {
	var heats []Heat
	p, clk := newTestProfiler(t, Options{
		BarWidth: 4,
		Highlight: func(h Heat, m string) string {
			heats = append(heats, h)
			return "<" + m + ">"
		},
	})
	scenarioAB(p, clk)

	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf, FormatText))
	assert.Contains(t, buf.String(), "[<=...>]")
	assert.Contains(t, buf.String(), "[<==..>]")
	assert.Equal(t, []Heat{HeatTerrible, HeatTerrible}, heats)
}

func TestRowsTreeGlyphs(t *testing.T) {
	p, clk := newTestProfiler(t, Options{})
	main := p.Enter("main")
	p.Time("load", func() { clk.Advance(time.Millisecond) })
	p.Time(`dir\file`, func() { clk.Advance(time.Millisecond) })
	main.Exit()

	rows := p.Snapshot().Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "  +-main      ", rows[0].Name)
	assert.Equal(t, "    |-dir/file", rows[1].Name)
	assert.Equal(t, "    +-load    ", rows[2].Name)
	for i, r := range rows {
		assert.Equal(t, i+1, r.Seq)
	}
}

func TestHeatOf(t *testing.T) {
	cases := []struct {
		pct  float64
		want Heat
	}{
		{0, HeatGood},
		{16, HeatGood},
		{16.01, HeatBad},
		{33, HeatBad},
		{33.01, HeatTerrible},
		{100, HeatTerrible},
	}
	for _, tc := range cases {
		if got := HeatOf(tc.pct); got != tc.want {
			t.Fatalf("HeatOf(%v) = %v, want %v", tc.pct, got, tc.want)
		}
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderReportsWriteErrors(t *testing.T) {
	p, clk := newTestProfiler(t, Options{})
	scenarioAB(p, clk)
	for _, f := range []Format{FormatText, FormatChrome, FormatPprof} {
		assert.Error(t, p.Render(failWriter{}, f), f.String())
	}
}
