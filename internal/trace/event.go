package trace

// Phase is the "ph" field of an event.
type Phase string

const (
	// PhaseComplete is a span carrying its own duration.
	PhaseComplete Phase = "X"
	// PhaseBegin opens a span closed by the next PhaseEnd on the same thread.
	PhaseBegin Phase = "B"
	// PhaseEnd closes the innermost open span.
	PhaseEnd Phase = "E"
)

// Event represents a single trace event.
type Event struct {
	Name      string         `json:"name"`
	Category  string         `json:"cat"`
	Phase     Phase          `json:"ph"`
	PID       int64          `json:"pid"`
	TID       uint64         `json:"tid"`
	Timestamp int64          `json:"ts"`            // microseconds
	Duration  *int64         `json:"dur,omitempty"` // microseconds, PhaseComplete only
	Color     string         `json:"cname,omitempty"`
	Args      map[string]any `json:"args"`
}

// Complete returns a PhaseComplete event starting at ts and lasting dur.
func Complete(name string, ts, dur int64) Event {
	return Event{Name: name, Phase: PhaseComplete, Timestamp: ts, Duration: &dur}
}

// Begin returns a PhaseBegin event at ts.
func Begin(name string, ts int64) Event {
	return Event{Name: name, Phase: PhaseBegin, Timestamp: ts}
}

// End returns a PhaseEnd event at ts.
func End(name string, ts int64) Event {
	return Event{Name: name, Phase: PhaseEnd, Timestamp: ts}
}
