// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/market-engine/pkg/cmd/ui"
	"carvel.dev/market-engine/pkg/version"
	"github.com/spf13/cobra"
)

type VersionOptions struct {
	RequireAtLeast string
}

func NewVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

func NewVersionCmd(o *VersionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run(ui.NewTTY(false)) },
	}
	cmd.Flags().StringVar(&o.RequireAtLeast, "require-at-least", "", "Fail unless version is at least this (eg 0.2.0)")
	return cmd
}

func (o *VersionOptions) Run(ui ui.UI) error {
	if len(o.RequireAtLeast) > 0 {
		err := version.RequireAtLeast(o.RequireAtLeast)
		if err != nil {
			return err
		}
	}

	ui.Printf("market-engine version %s\n", version.Version)

	return nil
}
