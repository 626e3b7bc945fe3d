// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/modcheck/modcheck/internal/checker"
	"github.com/modcheck/modcheck/internal/config"
	"github.com/modcheck/modcheck/internal/params"
)

var (
	lintFlags checkFlags

	lintTool = tool{
		name:       "lint",
		optOut:     ".nolint",
		paramsFile: params.LintFileName,
		newChecker: func(cfg *config.Config, _ string) (checker.Checker, error) {
			return checker.NewLinter(cfg.Lint)
		},
	}

	lintCmd = &cobra.Command{
		Use:   "lint [path]",
		Short: "Lint every module beneath the target path",
		Long: `Lint every discovered module, one lint-command invocation per
(module, parameter set) pair. With --check-only the configured
deny-warnings arguments are appended so any finding fails the invocation;
the linter never mutates files in that mode.

A ` + lintTool.optOut + ` marker file excludes a directory and its whole subtree from
linting. A ` + params.LintFileName + ` file in a module lists one parameter set per
line; without it the configured default set is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCheck(c, args, lintTool, &lintFlags)
		},
	}
)

func init() {
	registerCheckFlags(lintCmd, &lintFlags)
}
