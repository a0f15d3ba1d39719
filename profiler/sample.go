package profiler

import "time"

// Sample is the aggregated timing record of one path, as seen in a Snapshot.
type Sample struct {
	Path  Path
	Hits  uint64
	Total time.Duration // inclusive time
	Self  time.Duration // exclusive time; set by Account
	Open  bool          // the scope was still running when the snapshot was taken
	PID   int
	TID   uint64 // goroutine id; 0 for pooled and merged samples
}

// sample is the live registry record.
type sample struct {
	path  Path
	hits  uint64
	total time.Duration
}

func (s *sample) export(pid int, tid uint64) Sample {
	return Sample{Path: s.path, Hits: s.hits, Total: s.total, PID: pid, TID: tid}
}
