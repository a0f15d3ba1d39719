// Package goid reports the id of the calling goroutine.
package goid

import (
	"bytes"
	"runtime"
	"strconv"
)

// Get extracts the current goroutine ID from the runtime.Stack header.
// This is a lightweight approach that doesn't require linkname or unsafe.
// It returns 0 if the header cannot be parsed.
func Get() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	return parse(buf[:n])
}

// parse reads the id out of a header of the form "goroutine 123 [running]:".
func parse(header []byte) uint64 {
	const prefix = "goroutine "
	if !bytes.HasPrefix(header, []byte(prefix)) {
		return 0
	}
	header = header[len(prefix):]
	end := bytes.IndexByte(header, ' ')
	if end < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(header[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
