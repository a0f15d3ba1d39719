package profiler

// registry maps path keys to the samples of one goroutine partition.
type registry struct {
	samples map[PathKey]*sample
}

func newRegistry() registry {
	return registry{samples: make(map[PathKey]*sample)}
}

func (r registry) lookup(key PathKey) *sample { return r.samples[key] }

func (r registry) create(path Path) *sample {
	s := &sample{path: path}
	r.samples[path.Key()] = s
	return s
}

// fold adds the hits and time of every sample of other into r.
func (r registry) fold(other registry) {
	for k, s := range other.samples {
		dst := r.samples[k]
		if dst == nil {
			dst = r.create(s.path)
		}
		dst.hits += s.hits
		dst.total += s.total
	}
}

// copyOut returns detached copies of every sample, keyed like the registry.
func (r registry) copyOut(pid int, tid uint64) map[PathKey]*Sample {
	out := make(map[PathKey]*Sample, len(r.samples))
	for k, s := range r.samples {
		cp := s.export(pid, tid)
		out[k] = &cp
	}
	return out
}
