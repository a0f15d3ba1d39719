package profiler

import (
	"errors"
	"fmt"
)

// Contract violations. The profiler panics with an error wrapping one of
// these; they are never returned.
var (
	ErrUnbalanced   = errors.New("profiler: unbalanced enter/exit")
	ErrTooDeep      = errors.New("profiler: scope stack too deep")
	ErrTooManyPaths = errors.New("profiler: too many distinct paths")
	ErrBadLabel     = errors.New("profiler: invalid label")
)

func violation(kind error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)))
}
