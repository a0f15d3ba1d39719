package profiler

// Heat classifies a scope by its share of the grand total. The names are the
// trace viewer's reserved color names.
type Heat uint8

const (
	HeatGood     Heat = iota // <= 16%
	HeatBad                  // <= 33%
	HeatTerrible             // above
)

// HeatOf classifies a percentage.
func HeatOf(pct float64) Heat {
	switch {
	case pct <= 16:
		return HeatGood
	case pct <= 33:
		return HeatBad
	default:
		return HeatTerrible
	}
}

// String returns the trace viewer color name of h.
func (h Heat) String() string {
	switch h {
	case HeatGood:
		return "good"
	case HeatBad:
		return "bad"
	case HeatTerrible:
		return "terrible"
	default:
		return "unknown"
	}
}
