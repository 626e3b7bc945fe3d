// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/modcheck/modcheck/internal/checker"
	"github.com/modcheck/modcheck/internal/config"
	"github.com/modcheck/modcheck/internal/params"
)

var (
	fmtFlags checkFlags

	fmtTool = tool{
		name:       "fmt",
		optOut:     ".nofmt",
		paramsFile: params.FmtFileName,
		newChecker: func(cfg *config.Config, root string) (checker.Checker, error) {
			return checker.NewFormatter(cfg.Fmt, root)
		},
	}

	fmtCmd = &cobra.Command{
		Use:   "fmt [path]",
		Short: "Reformat every module beneath the target path",
		Long: `Reformat every discovered module, one format-command invocation per
(module, parameter set) pair. With --check-only no file is touched; instead
each file that would be reformatted is listed, relative to the tree root,
and any listed file counts as a failure even when the tool exits zero.

A ` + fmtTool.optOut + ` marker file excludes a directory and its whole subtree from
formatting. A ` + params.FmtFileName + ` file in a module lists one parameter set per
line; without it the configured default set is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCheck(c, args, fmtTool, &fmtFlags)
		},
	}
)

func init() {
	registerCheckFlags(fmtCmd, &fmtFlags)
}
