// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package capture redirects the process's standard output (or error) into memory
for the duration of a test.

	stdout, err := capture.Begin()
	...
	greeter.PrintHello()
	output, err := stdout.End()

A Stream is single use. Nesting captures of the same stream, or capturing
from several goroutines at once, is not supported.
*/
package capture

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/k14s/difflib"
)

// Stream is an in-progress redirection of os.Stdout or os.Stderr.
type Stream struct {
	target **os.File
	orig   *os.File
	w      *os.File

	buf     bytes.Buffer
	drained chan error
	ended   bool
}

// Begin redirects os.Stdout until End is called.
func Begin() (*Stream, error) { return begin(&os.Stdout) }

// BeginStderr redirects os.Stderr until End is called.
func BeginStderr() (*Stream, error) { return begin(&os.Stderr) }

func begin(target **os.File) (*Stream, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("Creating capture pipe: %s", err)
	}

	s := &Stream{target: target, orig: *target, w: w, drained: make(chan error, 1)}

	// Drain continuously so writers never block on a full pipe.
	go func() {
		_, err := io.Copy(&s.buf, r)
		r.Close()
		s.drained <- err
	}()

	*target = w
	return s, nil
}

// End restores the original stream and returns every byte written to it
// since Begin, unmodified.
func (s *Stream) End() (string, error) {
	if s.ended {
		return "", fmt.Errorf("Capture already ended")
	}
	s.ended = true

	*s.target = s.orig

	closeErr := s.w.Close()
	drainErr := <-s.drained

	if closeErr != nil {
		return "", fmt.Errorf("Closing capture pipe: %s", closeErr)
	}
	if drainErr != nil {
		return "", fmt.Errorf("Reading captured output: %s", drainErr)
	}
	return s.buf.String(), nil
}

// Run captures os.Stdout while fn executes. os.Stdout is restored even if fn panics.
func Run(fn func()) (output string, err error) {
	stdout, err := Begin()
	if err != nil {
		return "", err
	}

	defer func() {
		output, err = stdout.End()
	}()

	fn()
	return "", nil
}

// Diff renders a line diff between expected and actual for failure messages.
func Diff(expected, actual string) string {
	return difflib.PPDiff(strings.Split(expected, "\n"), strings.Split(actual, "\n"))
}
