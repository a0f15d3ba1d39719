package profiler

import (
	"context"
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	p, _ := newTestProfiler(t, Options{})
	ctx := WithProfiler(context.Background(), p)
	if got := FromContext(ctx); got != p {
		t.Fatalf("FromContext = %p, want %p", got, p)
	}
}

func TestContextFallsBackToNop(t *testing.T) {
	if got := FromContext(context.Background()); got != Nop {
		t.Fatalf("FromContext(empty) = %p, want Nop", got)
	}
	if got := FromContext(nil); got != Nop {
		t.Fatalf("FromContext(nil) = %p, want Nop", got)
	}
	if got := FromContext(WithProfiler(context.Background(), nil)); got != Nop {
		t.Fatalf("WithProfiler(nil) stored %p, want Nop", got)
	}
}
