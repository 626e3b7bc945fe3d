// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/modcheck/modcheck/internal/config"
	"github.com/modcheck/modcheck/internal/discovery"
	"github.com/modcheck/modcheck/internal/issue"
	"github.com/modcheck/modcheck/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration, resolved before any subcommand runs.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "modcheck",
		Short: "Run per-module quality checks across a source tree",
		Long: TitleStyle.Render("modcheck") + MutedStyle.Render(" - multi-module quality-check orchestrator") + `

modcheck walks a source tree, discovers every independently buildable
module (a directory carrying a ` + discovery.ManifestName + ` marker), and runs an
external formatter or linter against each one, once per parameter set.

A per-module parameter file lists the argument sets to try; a presence-only
opt-out marker excludes a directory and everything beneath it. Failures
accumulate into the process exit status, and the --halt-on tier decides
whether a failure aborts the run early or the tool keeps collecting.

` + MutedStyle.Render("Examples:") + `
  modcheck fmt                    Reformat every module under the current directory
  modcheck fmt --check-only       Report files that would change, mutate nothing
  modcheck lint ./services        Lint all modules beneath ./services
  modcheck lint --halt-on none    Exhaustive run for CI: report every failure`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <platform config dir>/modcheck/modcheck.toml)")

	// Add subcommands
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(lintCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		// Anything else is a command-line problem cobra reported itself.
		os.Exit(int(types.ExitUsageError))
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		// Surface config loading problems but keep running on defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}
	cfg = loaded

	if !verbose {
		verbose = cfg.Verbose
	}
	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
