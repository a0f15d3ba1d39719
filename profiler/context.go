package profiler

import "context"

// ctxKey is the key type for storing a Profiler in context.
type ctxKey struct{}

// WithProfiler attaches p to ctx.
func WithProfiler(ctx context.Context, p *Profiler) context.Context {
	if p == nil {
		p = Nop
	}
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext extracts the Profiler from ctx.
// If not found, returns Nop.
func FromContext(ctx context.Context) *Profiler {
	if ctx == nil {
		return Nop
	}
	if p, ok := ctx.Value(ctxKey{}).(*Profiler); ok {
		return p
	}
	return Nop
}
