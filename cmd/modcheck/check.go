// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modcheck/modcheck/internal/checker"
	"github.com/modcheck/modcheck/internal/config"
	"github.com/modcheck/modcheck/internal/discovery"
	"github.com/modcheck/modcheck/internal/issue"
	"github.com/modcheck/modcheck/internal/orchestrator"
	"github.com/modcheck/modcheck/internal/params"
	"github.com/modcheck/modcheck/pkg/types"
)

type (
	// checkFlags are the per-subcommand flag values shared by fmt and lint.
	checkFlags struct {
		checkOnly    bool
		haltOn       string
		singleModule bool
	}

	// tool binds one subcommand to its marker files and checker factory.
	tool struct {
		name       string
		optOut     string
		paramsFile string
		newChecker func(cfg *config.Config, root string) (checker.Checker, error)
	}
)

// registerCheckFlags declares the flag set shared by the fmt and lint
// subcommands. Both default to the most eager halt tier, parameter.
func registerCheckFlags(c *cobra.Command, flags *checkFlags) {
	c.Flags().BoolVar(&flags.checkOnly, "check-only", false, "report what would change without modifying anything")
	c.Flags().StringVar(&flags.haltOn, "halt-on", types.HaltParameter.String(), "abort granularity after a failure: none, module, or parameter")
	c.Flags().BoolVar(&flags.singleModule, "single-module", false, "treat the target path itself as the sole module, skipping discovery")
}

// runCheck is the shared body of the fmt and lint subcommands: resolve
// flags and config into an orchestrator, walk the tree, run the checks, and
// translate the aggregate into the process exit status.
func runCheck(c *cobra.Command, args []string, tl tool, flags *checkFlags) error {
	tier, err := types.ParseHaltTier(flags.haltOn)
	if err != nil {
		return &ExitError{Code: types.ExitUsageError, Err: err}
	}

	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	root, err := filepath.Abs(target)
	if err != nil {
		return configError(issue.WrapWithOperation(err, "resolve target path"))
	}

	loc := &discovery.Locator{OptOutMarker: tl.optOut}
	modules, err := locateModules(loc, target, flags.singleModule)
	if err != nil {
		return configError(err)
	}

	chk, err := tl.newChecker(cfg, root)
	if err != nil {
		return configError(err)
	}

	orch := &orchestrator.Orchestrator{
		Checker:   chk,
		Params:    &params.Source{FileName: tl.paramsFile, Default: params.Tokenize(cfg.DefaultParams)},
		Tier:      tier,
		CheckOnly: flags.checkOnly,
		Reporter:  &consoleReporter{out: c.OutOrStdout()},
	}

	sum, err := orch.Run(c.Context(), modules)
	if err != nil {
		// Fatal mid-run: no aggregate summary is relevant.
		return configError(err)
	}

	renderSummary(c.OutOrStdout(), tl.name, &sum)

	if sum.Failures > 0 {
		return &ExitError{
			Code: sum.ExitCode(),
			Err:  fmt.Errorf("%d of %d %s invocations failed", sum.Failures, sum.Invocations, tl.name),
		}
	}
	return nil
}

func locateModules(loc *discovery.Locator, target string, single bool) ([]discovery.Module, error) {
	if single {
		mod, err := loc.Single(target)
		if err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("resolve single module").
				WithResource(target).
				WithSuggestion("Point --single-module at a directory containing " + discovery.ManifestName).
				Wrap(err).
				Build()
		}
		return []discovery.Module{mod}, nil
	}

	modules, err := loc.Discover(target)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("locate modules").
			WithResource(target).
			WithSuggestion("Check that the target path exists and is readable").
			Wrap(err).
			Build()
	}
	return modules, nil
}

// configError renders a fatal configuration error to stderr and wraps it in
// the fixed configuration exit code.
func configError(err error) error {
	fmt.Fprintln(rootCmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	return &ExitError{Code: types.ExitConfigError, Err: err}
}

// consoleReporter renders orchestrator progress: one line per module
// visited and, in check-only mode, one indented line per file that would be
// modified (Outcome.Files is only ever populated in that mode).
type consoleReporter struct {
	out io.Writer
}

func (r *consoleReporter) ModuleStart(mod discovery.Module) {
	line := TitleStyle.Render(mod.RelPath)
	if mod.Name != mod.RelPath {
		line += MutedStyle.Render(" (" + mod.Name + ")")
	}
	fmt.Fprintln(r.out, line)
}

func (r *consoleReporter) InvocationDone(res orchestrator.Result) {
	for _, file := range res.Outcome.Files {
		fmt.Fprintf(r.out, "  %s\n", file)
	}
	if !res.Outcome.OK {
		fmt.Fprintf(r.out, "  %s %v\n", ErrorStyle.Render("FAIL"), res.Args)
	}
}

func renderSummary(w io.Writer, name string, sum *orchestrator.Summary) {
	status := SuccessStyle.Render("ok")
	if sum.Failures > 0 {
		status = ErrorStyle.Render(fmt.Sprintf("%d failed", sum.Failures))
	}
	halted := ""
	if sum.Halted {
		halted = WarningStyle.Render(" (halted early)")
	}
	fmt.Fprintf(w, "%s: %d modules, %d invocations, %s%s\n", name, sum.Modules, sum.Invocations, status, halted)
}
