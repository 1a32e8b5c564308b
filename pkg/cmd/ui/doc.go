// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui separates what commands print for the user (stdout) from warnings
and debug diagnostics (stderr), so that stdout carries only command output.
*/
package ui
