package profiler

import (
	"slices"
	"strings"
)

// Delimiter joins labels when a path is displayed.
const Delimiter = ";"

// keySep joins labels inside a PathKey. Labels may not contain it.
const keySep = "\x00"

// Path is the ordered list of scope labels from the profiling root.
type Path []string

// PathKey identifies a Path inside a registry.
type PathKey string

// Key returns the registry key of p.
func (p Path) Key() PathKey { return PathKey(strings.Join(p, keySep)) }

// String joins the labels with Delimiter.
func (p Path) String() string { return strings.Join(p, Delimiter) }

// Leaf returns the innermost label, or "" for an empty path.
func (p Path) Leaf() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Child returns a new path extending p with label. p is never modified.
func (p Path) Child(label string) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = label
	return out
}

// IsAncestorOf reports whether p is a proper prefix of q, label by label.
func (p Path) IsAncestorOf(q Path) bool {
	return len(p) < len(q) && slices.Equal(p, q[:len(p)])
}

// ComparePaths orders paths lexicographically by label; an ancestor sorts
// before all of its descendants.
func ComparePaths(a, b Path) int { return slices.Compare(a, b) }
