// SPDX-License-Identifier: MPL-2.0

package checker

import (
	"context"

	"github.com/modcheck/modcheck/internal/config"
	"github.com/modcheck/modcheck/internal/discovery"
)

// Linter runs the external lint command. Unlike the formatter, both of its
// modes are exit-code based: the tool prints its own diagnostics to stderr
// and signals failure through a non-zero status.
type Linter struct {
	command   []string
	checkArgs []string
	run       runFunc
}

// NewLinter builds a Linter from the tool configuration.
func NewLinter(cfg config.ToolConfig) (*Linter, error) {
	command, err := cfg.Argv()
	if err != nil {
		return nil, err
	}
	checkArgs, err := cfg.CheckArgv()
	if err != nil {
		return nil, err
	}
	return &Linter{command: command, checkArgs: checkArgs, run: runCommand}, nil
}

// Name implements Checker.
func (l *Linter) Name() string { return "lint" }

// Apply runs the lint command in its fix-applying form.
func (l *Linter) Apply(ctx context.Context, mod discovery.Module, args []string) (Outcome, error) {
	argv := append(append([]string{}, l.command...), args...)
	_, code, err := l.run(ctx, mod.Path, argv, false)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{OK: code == 0}, nil
}

// Check runs the lint command with the deny-warnings arguments appended, so
// any finding fails the invocation. Nothing is mutated.
func (l *Linter) Check(ctx context.Context, mod discovery.Module, args []string) (Outcome, error) {
	argv := append(append([]string{}, l.command...), args...)
	argv = append(argv, l.checkArgs...)

	_, code, err := l.run(ctx, mod.Path, argv, false)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{OK: code == 0}, nil
}
