package profiler

import (
	"slices"
	"time"
)

// Account converts inclusive time into self time. It returns a new slice,
// sorted by path, in which every Self is Total minus the Total of its direct
// children; the input is not modified.
//
// Paths are visited in descending order, so every path comes after all of
// its descendants. Each path then subtracts its already-reduced self time
// from every ancestor, which leaves each ancestor with exactly its own
// exclusive time. Samples from several goroutines may be mixed as long as
// each path appears once; self time is linear in the totals.
func Account(samples []Sample) []Sample {
	out := slices.Clone(samples)
	for i := range out {
		out[i].Self = out[i].Total
	}

	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return ComparePaths(out[b].Path, out[a].Path)
	})

	for a := 0; a < len(order); a++ {
		deeper := &out[order[a]]
		for b := a + 1; b < len(order); b++ {
			if shallower := &out[order[b]]; shallower.Path.IsAncestorOf(deeper.Path) {
				shallower.Self -= deeper.Self
			}
		}
	}

	for i := range out {
		out[i].Self = max(out[i].Self, 0)
	}
	sortSamples(out)
	return out
}

// GrandTotal is the sum of self time over samples; it is the denominator of
// every percentage in a report.
func GrandTotal(samples []Sample) time.Duration {
	var total time.Duration
	for _, s := range samples {
		total += s.Self
	}
	return total
}

// Percent returns 100*self/grand, or 0 when nothing was measured.
func Percent(self, grand time.Duration) float64 {
	if grand <= 0 {
		return 0
	}
	return float64(self) * 100 / float64(grand)
}

func sortSamples(samples []Sample) {
	slices.SortStableFunc(samples, func(a, b Sample) int {
		return ComparePaths(a.Path, b.Path)
	})
}
