// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"io"
	"os"
)

// TTY prints to stdout, and warnings/debug output to stderr.
type TTY struct {
	debug  bool
	stdout io.Writer
	stderr io.Writer
}

var _ UI = TTY{}

// NewTTY returns a TTY bound to the process's standard streams. The streams
// are resolved on every write rather than at construction.
func NewTTY(debug bool) TTY {
	return TTY{debug: debug}
}

// NewCustomWriterTTY is used for testing whether TTY writes correct output to stdout/stderr.
// A nil writer falls back to the matching standard stream.
func NewCustomWriterTTY(debug bool, stdout, stderr io.Writer) TTY {
	return TTY{debug, stdout, stderr}
}

func (t TTY) Printf(str string, args ...interface{}) {
	fmt.Fprintf(t.out(), str, args...)
}

func (t TTY) Warnf(str string, args ...interface{}) {
	fmt.Fprintf(t.err(), str, args...)
}

func (t TTY) Debugf(str string, args ...interface{}) {
	if t.debug {
		fmt.Fprintf(t.err(), str, args...)
	}
}

func (t TTY) DebugWriter() io.Writer {
	if t.debug {
		return t.err()
	}
	return noopWriter{}
}

func (t TTY) out() io.Writer {
	if t.stdout == nil {
		return os.Stdout
	}
	return t.stdout
}

func (t TTY) err() io.Writer {
	if t.stderr == nil {
		return os.Stderr
	}
	return t.stderr
}

type noopWriter struct{}

var _ io.Writer = noopWriter{}

func (w noopWriter) Write(data []byte) (int, error) { return len(data), nil }
