package profiler

import "time"

// Pause stops (true) or resumes (false) time accounting. While paused, scopes
// are still entered and exited and hits still count, but the paused interval
// is excluded from the elapsed time of every open scope.
func (p *Profiler) Pause(paused bool) {
	if !p.Enabled() {
		return
	}
	now := p.opts.Clock.Now()

	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case paused && !p.paused:
		p.paused = true
		p.pausedSince = now
	case !paused && p.paused:
		p.pausedTotal += now.Sub(p.pausedSince)
		p.paused = false
	}
}

// IsPaused reports whether time accounting is paused.
func (p *Profiler) IsPaused() bool {
	if !p.Enabled() {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

func (p *Profiler) pauseOffset(now time.Time) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pauseOffsetLocked(now)
}

// pauseOffsetLocked is the total paused time up to now.
func (p *Profiler) pauseOffsetLocked(now time.Time) time.Duration {
	off := p.pausedTotal
	if p.paused {
		off += now.Sub(p.pausedSince)
	}
	return off
}

// Clear drops all samples. Scopes still open keep working: each open frame
// gets a fresh sample for its path, with zero hits, whose measurement
// restarts now. The pause state is kept.
func (p *Profiler) Clear() {
	if !p.Enabled() {
		return
	}
	now := p.opts.Clock.Now()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Every partition stays locked until the key set is rebuilt, so no
	// concurrent Enter can register a path that the reset then forgets.
	ths := p.threadListLocked()
	for _, th := range ths {
		th.mu.Lock()
	}
	defer func() {
		for _, th := range ths {
			th.mu.Unlock()
		}
	}()

	mark := p.pauseOffsetLocked(now)
	keys := make(map[PathKey]struct{})
	for _, th := range ths {
		if len(th.stack) == 0 {
			th.dead = true
			delete(p.threads, th.id)
			continue
		}
		th.reg = newRegistry()
		for i := range th.stack {
			f := &th.stack[i]
			f.s = th.reg.create(f.s.path)
			f.start = now
			f.pauseMark = mark
			keys[f.s.path.Key()] = struct{}{}
		}
	}
	p.done = newRegistry()

	p.keysMu.Lock()
	p.keys = keys
	p.keysMu.Unlock()

	p.log.Debug().Int("open_scopes", len(keys)).Int("partitions", len(p.threads)).Msg("cleared")
}
