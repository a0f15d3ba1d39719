package trace

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestWriterArray(t *testing.T) {
	var buf bytes.Buffer
	tw := NewWriter(&buf, FormatArray)
	begin := Begin("outer", 0)
	begin.Category = "CPU"
	if err := tw.Emit(begin); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := tw.Emit(Complete("inner", 10, 25)); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := tw.Emit(End("outer", 40)); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var events []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &events); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if events[0]["ph"] != "B" || events[1]["ph"] != "X" || events[2]["ph"] != "E" {
		t.Fatalf("phases = %v %v %v", events[0]["ph"], events[1]["ph"], events[2]["ph"])
	}
	if _, ok := events[0]["dur"]; ok {
		t.Fatalf("begin event must not carry dur")
	}
	if events[1]["dur"] != float64(25) {
		t.Fatalf("complete dur = %v, want 25", events[1]["dur"])
	}
	args, ok := events[1]["args"].(map[string]any)
	if !ok || len(args) != 0 {
		t.Fatalf("args = %#v, want empty object", events[1]["args"])
	}
}

func TestWriterZeroDurationKept(t *testing.T) {
	var buf bytes.Buffer
	tw := NewWriter(&buf, FormatArray)
	_ = tw.Emit(Complete("instant", 5, 0))
	_ = tw.Close()
	if !strings.Contains(buf.String(), `"dur":0`) {
		t.Fatalf("zero duration dropped: %s", buf.String())
	}
}

func TestWriterObject(t *testing.T) {
	var buf bytes.Buffer
	tw := NewWriter(&buf, FormatObject)
	_ = tw.Emit(Complete("a", 0, 1))
	if err := tw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	var doc struct {
		TraceEvents []Event `json:"traceEvents"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(doc.TraceEvents) != 1 || doc.TraceEvents[0].Name != "a" {
		t.Fatalf("traceEvents = %+v", doc.TraceEvents)
	}
}

func TestWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, FormatArray).Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	var events []Event
	if err := json.Unmarshal(buf.Bytes(), &events); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(events) != 0 {
		t.Fatalf("got %d events, want 0", len(events))
	}
}

type failWriter struct{ n int }

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errors.New("disk full")
	}
	f.n--
	return len(p), nil
}

func TestWriterStickyError(t *testing.T) {
	tw := NewWriter(&failWriter{n: 1}, FormatArray)
	if err := tw.Emit(Complete("a", 0, 1)); err == nil {
		t.Fatalf("expected write error")
	}
	err := tw.Close()
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("Close() = %v, want wrapped disk full", err)
	}
	if tw.Emit(Complete("b", 0, 1)) == nil {
		t.Fatalf("Emit after Close must fail")
	}
}
