// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to market-engine's "commands" -- instances of cobra.Command
(not to be confused with ./cmd which contains the bootstrapping for executing market-engine).

For a list of commands run:

	$ market-engine help

The default command is "hello".
*/
package cmd
