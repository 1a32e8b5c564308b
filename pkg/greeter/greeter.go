// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package greeter prints the market-engine greeting line.

The greeting is fixed: no arguments, no formatting, nothing locale dependent.
*/
package greeter

import (
	"fmt"
)

// Greeting is the exact byte sequence PrintHello writes (22 bytes, ASCII).
const Greeting = "Hello, Market Engine!\n"

// PrintHello writes Greeting to the process's standard output.
//
// os.Stdout is looked up on every call, so a redirection in place at call
// time (see package capture) receives the line. Write errors are not reported.
func PrintHello() {
	fmt.Print(Greeting)
}
