package profiler

import (
	"fmt"
	"io"
	"strings"
	"time"

	"scopeprof/internal/pathtree"
)

// treeRoot is the label of the invisible root line of the tree column.
const treeRoot = "/"

// TableOptions configures WriteTable.
type TableOptions struct {
	Delimiter  string
	Terminator string
	BarWidth   int
	Highlight  func(h Heat, meter string) string
	// Markdown adds a header and wraps every row in pipes.
	Markdown bool
}

// Row is one line of a tabular report.
type Row struct {
	Seq     int
	Name    string // tree line with branch glyphs, padded
	Sample  Sample
	Percent float64
	Heat    Heat
}

// Rows lays out the merged samples of s as a tree, one row per node in
// depth-first order.
func (s *Snapshot) Rows() []Row {
	merged := s.Merged()
	grand := GrandTotal(merged)

	root := pathtree.New[*Sample](treeRoot)
	for i := range merged {
		root.Insert(merged[i].Path).Value = &merged[i]
	}
	nodes := root.PreOrder()
	lines := root.Lines()

	rows := make([]Row, 0, len(nodes)-1)
	for i := 1; i < len(nodes); i++ {
		var smp Sample
		if v := nodes[i].Value; v != nil {
			smp = *v
		}
		pct := Percent(smp.Self, grand)
		rows = append(rows, Row{
			Seq:     i,
			Name:    strings.ReplaceAll(lines[i], `\`, "/"),
			Sample:  smp,
			Percent: pct,
			Heat:    HeatOf(pct),
		})
	}
	return rows
}

// RenderText writes a tabular report whose columns are separated by delim
// and whose lines end with feed.
func (p *Profiler) RenderText(w io.Writer, delim, feed string) error {
	if !p.Enabled() {
		return nil
	}
	return p.Snapshot().WriteTable(w, TableOptions{
		Delimiter:  delim,
		Terminator: feed,
		BarWidth:   p.opts.BarWidth,
		Highlight:  p.opts.Highlight,
	})
}

var markdownHeader = []string{"#", "scope", "meter", "cpu", "self", "hits"}

// WriteTable writes s as a table.
func (s *Snapshot) WriteTable(w io.Writer, opts TableOptions) error {
	if opts.BarWidth <= 0 {
		opts.BarWidth = DefaultBarWidth
	}
	var sb strings.Builder
	if opts.Markdown {
		sb.WriteString("|" + strings.Join(markdownHeader, "|") + "|" + opts.Terminator)
		sb.WriteString("|" + strings.Repeat("---|", len(markdownHeader)) + opts.Terminator)
	}
	for _, r := range s.Rows() {
		line := strings.Join(r.fields(opts), opts.Delimiter)
		if opts.Markdown {
			line = "|" + line + "|"
		}
		sb.WriteString(line)
		sb.WriteString(opts.Terminator)
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("profiler: write table: %w", err)
	}
	return nil
}

func (r Row) fields(opts TableOptions) []string {
	bar := meter(r.Percent, opts.BarWidth)
	if opts.Highlight != nil {
		bar = opts.Highlight(r.Heat, bar)
	}
	name := r.Name
	if opts.Markdown {
		// Branch glyphs contain the cell delimiter.
		name = strings.ReplaceAll(name, "|", `\|`)
	}
	return []string{
		fmt.Sprintf("%4d.", r.Seq),
		name,
		"[" + bar + "]",
		fmt.Sprintf("%5.2f%% CPU", r.Percent),
		fmt.Sprintf("(%9.3fms)", toMillis(r.Sample.Self)),
		fmt.Sprintf("%5d hits", r.Sample.Hits),
	}
}

// meter draws a bar of width cells filled in proportion to pct.
func meter(pct float64, width int) string {
	filled := min(max(int(pct*float64(width)/100), 0), width)
	return strings.Repeat("=", filled) + strings.Repeat(".", width-filled)
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
