// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/market-engine/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type MarketEngineOptions struct{}

func NewDefaultMarketEngineOptions() *MarketEngineOptions {
	return &MarketEngineOptions{}
}

func NewDefaultMarketEngineCmd() *cobra.Command {
	return NewMarketEngineCmd(NewDefaultMarketEngineOptions())
}

func NewMarketEngineCmd(o *MarketEngineOptions) *cobra.Command {
	cmd := NewHelloCmd(NewHelloOptions())

	cmd.Use = "market-engine"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "market-engine prints its greeting"
	cmd.Long = `market-engine prints its greeting.

Running market-engine without a subcommand is the same as "market-engine hello".`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewHelloCmd(NewHelloOptions()))
	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
