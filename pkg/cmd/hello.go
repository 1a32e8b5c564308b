// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"time"

	"carvel.dev/market-engine/pkg/cmd/ui"
	"carvel.dev/market-engine/pkg/greeter"
	"github.com/spf13/cobra"
)

type HelloOptions struct {
	Debug bool
}

func NewHelloOptions() *HelloOptions {
	return &HelloOptions{}
}

func NewHelloCmd(o *HelloOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hello",
		Short: "Print greeting",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

// Run prints the greeting. Debug output never reaches stdout.
func (o *HelloOptions) Run() error {
	ui := ui.NewTTY(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Since(t1))
	}()

	greeter.PrintHello()

	return nil
}
