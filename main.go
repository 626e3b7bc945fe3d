// SPDX-License-Identifier: MPL-2.0

// Command modcheck walks a source tree, discovers independently buildable
// modules, and runs a per-module formatter or linter across each one.
package main

import cmd "github.com/modcheck/modcheck/cmd/modcheck"

func main() {
	cmd.Execute()
}
