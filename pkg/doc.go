// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of market-engine.

# Greeting

market-engine prints a single fixed line to stdout:

	Hello, Market Engine!

That line, and the function that writes it, live in:

	(1) => pkg/greeter => (0)

# Command Line

The CLI is a small cobra command tree. Running market-engine without a
subcommand prints the greeting; "version" reports the build version.

	(0) => pkg/cmd => (3)
	(1) => pkg/cmd/ui => (0)
	(1) => pkg/version => (0)

# Test Support

Output written to stdout/stderr is checked byte for byte. Tests capture it
with:

	(0) => pkg/tests/capture => (0)

# Dependencies

Each package's dependencies on other packages within this module are as follows
(if a package is not listed, it has no dependencies on other packages within
this module; test-only dependencies are not listed):

	pkg/cmd:
	- pkg/greeter
	- pkg/cmd/ui
	- pkg/version
*/
package pkg
