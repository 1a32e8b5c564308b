// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui_test

import (
	"bytes"
	"fmt"
	"testing"

	"carvel.dev/market-engine/pkg/cmd/ui"
	"carvel.dev/market-engine/pkg/tests/capture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTY_routes_output_by_kind(t *testing.T) {
	t.Run("without debug", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		tty := ui.NewCustomWriterTTY(false, stdout, stderr)

		tty.Printf("out %d\n", 1)
		tty.Warnf("warn %d\n", 2)
		tty.Debugf("debug %d\n", 3)
		fmt.Fprint(tty.DebugWriter(), "debug writer\n")

		assert.Equal(t, "out 1\n", stdout.String())
		assert.Equal(t, "warn 2\n", stderr.String())
	})

	t.Run("with debug", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		tty := ui.NewCustomWriterTTY(true, stdout, stderr)

		tty.Printf("out\n")
		tty.Debugf("debug %s\n", "on")
		fmt.Fprint(tty.DebugWriter(), "debug writer\n")

		assert.Equal(t, "out\n", stdout.String())
		assert.Equal(t, "debug on\ndebug writer\n", stderr.String())
	})
}

func TestNewTTY_writes_to_current_stdout(t *testing.T) {
	tty := ui.NewTTY(false)

	output, err := capture.Run(func() { tty.Printf("captured\n") })
	require.NoError(t, err)
	assert.Equal(t, "captured\n", output)
}

func TestNewTTY_debug_goes_to_stderr(t *testing.T) {
	tty := ui.NewTTY(true)

	stderr, err := capture.BeginStderr()
	require.NoError(t, err)

	stdout, err := capture.Run(func() { tty.Debugf("diagnostics\n") })

	errOutput, endErr := stderr.End()
	require.NoError(t, endErr)
	require.NoError(t, err)

	assert.Equal(t, "", stdout)
	assert.Equal(t, "diagnostics\n", errOutput)
}
