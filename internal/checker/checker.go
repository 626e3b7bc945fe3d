// SPDX-License-Identifier: MPL-2.0

// Package checker invokes the external quality-check command for one module
// with one parameter set. The orchestrator sees only the Checker capability
// and its tagged Outcome, so tool-specific exit-code quirks stay here.
package checker

import (
	"context"

	"github.com/modcheck/modcheck/internal/discovery"
)

type (
	// Outcome classifies one invocation. A returned error from Apply/Check
	// is the third tag of the result: the external command could not be
	// executed at all, which is a fatal configuration error rather than a
	// check failure.
	Outcome struct {
		// OK is true when the check passed.
		OK bool
		// Files lists the files that would be modified, relative to the
		// tree root. Populated only by tools that report offenders via
		// output text (the formatter's check mode).
		Files []string
	}

	// Checker runs one external check tool against a module in either of
	// two modes. Apply may mutate module contents in place; Check must not.
	Checker interface {
		// Name is the tool's short name for reporting ("fmt" or "lint").
		Name() string
		// Apply runs the fix-applying form of the command.
		Apply(ctx context.Context, mod discovery.Module, args []string) (Outcome, error)
		// Check runs the read-only diagnostic form of the command.
		Check(ctx context.Context, mod discovery.Module, args []string) (Outcome, error)
	}
)
