package profiler

import "time"

// Snapshot is an accounted point-in-time copy of a Profiler. It shares no
// state with the live profiler.
type Snapshot struct {
	Taken   time.Time
	PID     int
	Threads []Thread
}

// Thread holds the accounted samples of one goroutine, sorted by path.
type Thread struct {
	ID      uint64
	Samples []Sample
}

// Snapshot copies the registry, closes still-open scopes on the copy at the
// current instant and runs the hierarchical accounting on it.
//
// Samples of goroutines that have no scope open are pooled under thread ID
// 0. Each goroutine with open scopes gets its own Thread holding the paths it
// recorded since its outermost scope opened.
func (p *Profiler) Snapshot() *Snapshot {
	if !p.Enabled() {
		return &Snapshot{}
	}
	now := p.opts.Clock.Now()

	p.mu.Lock()
	defer p.mu.Unlock()

	mark := p.pauseOffsetLocked(now)
	snap := &Snapshot{Taken: now, PID: p.pid}
	if done := p.done.copyOut(p.pid, 0); len(done) > 0 {
		snap.Threads = append(snap.Threads, Thread{ID: 0, Samples: Account(values(done))})
	}
	for _, th := range p.threadListLocked() {
		samples := th.capture(p.pid, now, mark)
		if len(samples) == 0 {
			continue
		}
		snap.Threads = append(snap.Threads, Thread{ID: th.id, Samples: Account(samples)})
	}
	return snap
}

func (th *thread) capture(pid int, now time.Time, mark time.Duration) []Sample {
	th.mu.Lock()
	defer th.mu.Unlock()

	copies := th.reg.copyOut(pid, th.id)
	for _, f := range th.stack {
		if cp, ok := copies[f.s.path.Key()]; ok {
			cp.Total += f.elapsed(now, mark)
			cp.Open = true
		}
	}
	return values(copies)
}

func values(m map[PathKey]*Sample) []Sample {
	out := make([]Sample, 0, len(m))
	for _, cp := range m {
		out = append(out, *cp)
	}
	return out
}

// Samples returns the samples of every goroutine, unmerged.
func (s *Snapshot) Samples() []Sample {
	var out []Sample
	for _, th := range s.Threads {
		out = append(out, th.Samples...)
	}
	return out
}

// Merged combines the samples of all goroutines by path, summing hits, total
// and self time. The result is sorted by path.
func (s *Snapshot) Merged() []Sample {
	index := make(map[PathKey]int)
	var out []Sample
	for _, th := range s.Threads {
		for _, smp := range th.Samples {
			key := smp.Path.Key()
			i, ok := index[key]
			if !ok {
				index[key] = len(out)
				smp.TID = 0
				out = append(out, smp)
				continue
			}
			m := &out[i]
			m.Hits += smp.Hits
			m.Total += smp.Total
			m.Self += smp.Self
			m.Open = m.Open || smp.Open
		}
	}
	sortSamples(out)
	return out
}

// GrandTotal is the self time summed over every sample of the snapshot.
func (s *Snapshot) GrandTotal() time.Duration {
	return GrandTotal(s.Samples())
}

// Find returns the merged sample for path, if any.
func (s *Snapshot) Find(path ...string) (Sample, bool) {
	key := Path(path).Key()
	for _, smp := range s.Merged() {
		if smp.Path.Key() == key {
			return smp, true
		}
	}
	return Sample{}, false
}
