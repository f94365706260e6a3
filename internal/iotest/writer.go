// Package iotest provides io helpers for tests.
package iotest

import (
	"bytes"
	"io"
	"testing"
)

// Writer builds an io.Writer that logs all writes to the given
// testing.TB, so that command output shows up interleaved with the
// test's own logging.
func Writer(t testing.TB) io.Writer {
	return &writer{t: t}
}

type writer struct{ t testing.TB }

func (w *writer) Write(b []byte) (int, error) {
	n := len(b)
	// Drop the trailing newline; Logf adds its own.
	w.t.Logf("%s", bytes.TrimSuffix(b, []byte("\n")))
	return n, nil
}
