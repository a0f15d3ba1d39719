package trace

import "encoding/json"

// Format represents the document layout for trace events.
type Format uint8

const (
	FormatArray  Format = iota // [ev, ev, ...]
	FormatObject               // {"traceEvents": [ev, ev, ...]}
)

// String returns the string representation of Format.
func (f Format) String() string {
	switch f {
	case FormatArray:
		return "array"
	case FormatObject:
		return "object"
	default:
		return "unknown"
	}
}

func (f Format) header() string {
	if f == FormatObject {
		return "{\"traceEvents\":[\n"
	}
	return "[\n"
}

func (f Format) footer() string {
	if f == FormatObject {
		return "\n]}\n"
	}
	return "\n]\n"
}

// encodeEvent marshals ev as a single JSON object. A nil Args map is written
// as an empty object, which is what trace viewers expect.
func encodeEvent(ev Event) ([]byte, error) {
	if ev.Args == nil {
		ev.Args = map[string]any{}
	}
	return json.Marshal(ev)
}
