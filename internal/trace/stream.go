package trace

import (
	"fmt"
	"io"
	"sync"
)

// Writer streams events to an io.Writer as one JSON document.
// The first write error is kept and returned by every later call.
type Writer struct {
	mu     sync.Mutex
	w      io.Writer
	format Format
	first  bool // no event written yet, for comma handling
	closed bool
	err    error
}

// NewWriter creates a Writer and writes the document header.
func NewWriter(w io.Writer, format Format) *Writer {
	tw := &Writer{w: w, format: format, first: true}
	tw.write(format.header())
	return tw
}

// Emit writes one event.
func (t *Writer) Emit(ev Event) error {
	data, err := encodeEvent(ev)
	if err != nil {
		return fmt.Errorf("trace: encode %q: %w", ev.Name, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return fmt.Errorf("trace: emit %q after close", ev.Name)
	}
	if !t.first {
		t.writeLocked(",\n")
	}
	t.first = false
	t.writeLocked(string(data))
	return t.err
}

// Err returns the first write error, if any.
func (t *Writer) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Close writes the document footer. It does not close the underlying writer.
func (t *Writer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return t.err
	}
	t.closed = true
	t.writeLocked(t.format.footer())
	return t.err
}

func (t *Writer) write(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writeLocked(s)
}

func (t *Writer) writeLocked(s string) {
	if t.err != nil {
		return
	}
	if _, err := io.WriteString(t.w, s); err != nil {
		t.err = fmt.Errorf("trace: write: %w", err)
	}
}
