// SPDX-License-Identifier: MPL-2.0

// Package orchestrator drives the three-level iteration — modules,
// parameter sets within a module, one check invocation per set — and owns
// the halt decision. The halt tier and the aggregate failure counter live
// on an explicit Orchestrator value, never in package state, so the abort
// rule is unit-testable without spawning subprocesses.
package orchestrator

import (
	"context"

	"github.com/modcheck/modcheck/internal/checker"
	"github.com/modcheck/modcheck/internal/discovery"
	"github.com/modcheck/modcheck/pkg/types"
)

type (
	// ParamSource yields the ordered parameter sets for a module directory.
	ParamSource interface {
		Sets(dir string) ([][]string, error)
	}

	// Reporter receives progress events as the run unfolds. Implementations
	// render them; the orchestrator never writes output itself.
	Reporter interface {
		// ModuleStart is called once per module before its parameter sets run.
		ModuleStart(mod discovery.Module)
		// InvocationDone is called after every check invocation.
		InvocationDone(res Result)
	}

	// Result records one (module, parameter set, status) triple.
	Result struct {
		Module discovery.Module
		Args   []string
		// Outcome is the classified invocation result.
		Outcome checker.Outcome
	}

	// Summary aggregates a run. Failures is the aggregate counter whose sum
	// becomes the process exit status.
	Summary struct {
		Results []Result
		// Modules counts modules whose parameter-set loop completed.
		Modules int
		// Invocations counts check invocations attempted.
		Invocations int
		// Failures counts invocations that reported issues.
		Failures int
		// Halted is true when the halt tier stopped the run before all
		// modules were attempted.
		Halted bool
	}

	// Orchestrator runs one check tool across a module list under a halt
	// policy. Execution is strictly sequential: one external command runs
	// to completion before the next starts.
	Orchestrator struct {
		Checker checker.Checker
		Params  ParamSource
		Tier    types.HaltTier
		// CheckOnly selects the read-only diagnostic mode instead of
		// applying fixes.
		CheckOnly bool
		Reporter  Reporter
	}
)

// ExitCode converts the aggregate into the process exit status.
func (s *Summary) ExitCode() types.ExitCode {
	return types.ExitCodeFromFailures(s.Failures)
}

// Run iterates modules in order, checking each under every parameter set.
// After every invocation, and again after every completed module, the halt
// rule is re-evaluated: a non-zero aggregate stops the run iff the tier is
// at or above the level just finished. A returned error is a fatal
// configuration problem (unreadable parameter file, unrunnable command) and
// invalidates the partial summary.
func (o *Orchestrator) Run(ctx context.Context, modules []discovery.Module) (Summary, error) {
	var sum Summary
	reporter := o.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	for _, mod := range modules {
		reporter.ModuleStart(mod)

		sets, err := o.Params.Sets(mod.Path)
		if err != nil {
			return sum, err
		}

		// Zero sets means the module is processed zero times; that is a
		// silent no-op, not an error.
		for _, args := range sets {
			out, err := o.invoke(ctx, mod, args)
			if err != nil {
				return sum, err
			}

			res := Result{Module: mod, Args: args, Outcome: out}
			sum.Results = append(sum.Results, res)
			sum.Invocations++
			if !out.OK {
				sum.Failures++
			}
			reporter.InvocationDone(res)

			if sum.Failures > 0 && o.Tier.StopsAt(types.HaltParameter) {
				sum.Halted = true
				return sum, nil
			}
		}

		sum.Modules++
		if sum.Failures > 0 && o.Tier.StopsAt(types.HaltModule) {
			sum.Halted = true
			return sum, nil
		}
	}

	return sum, nil
}

func (o *Orchestrator) invoke(ctx context.Context, mod discovery.Module, args []string) (checker.Outcome, error) {
	if o.CheckOnly {
		return o.Checker.Check(ctx, mod, args)
	}
	return o.Checker.Apply(ctx, mod, args)
}

type nopReporter struct{}

func (nopReporter) ModuleStart(discovery.Module) {}
func (nopReporter) InvocationDone(Result)        {}
