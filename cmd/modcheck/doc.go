// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for modcheck.
//
// This package implements the Cobra command hierarchy: the root command and
// the fmt/lint subcommands that share the tree walk, parameter-set loading,
// and halt-tiered orchestration.
package cmd
