// SPDX-License-Identifier: MPL-2.0

package checker

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/modcheck/modcheck/internal/config"
	"github.com/modcheck/modcheck/internal/discovery"
)

// Formatter runs the external format command. Its check mode is
// output-based: the command lists every file that would be reformatted on
// stdout, and a non-empty listing means failure even when the exit code is
// zero.
type Formatter struct {
	command   []string
	checkArgs []string
	root      string
	run       runFunc
}

// NewFormatter builds a Formatter from the tool configuration. root is the
// tree root that reported file paths are made relative to.
func NewFormatter(cfg config.ToolConfig, root string) (*Formatter, error) {
	command, err := cfg.Argv()
	if err != nil {
		return nil, err
	}
	checkArgs, err := cfg.CheckArgv()
	if err != nil {
		return nil, err
	}
	return &Formatter{command: command, checkArgs: checkArgs, root: root, run: runCommand}, nil
}

// Name implements Checker.
func (f *Formatter) Name() string { return "fmt" }

// Apply reformats the module in place. Success is purely the command's own
// exit code.
func (f *Formatter) Apply(ctx context.Context, mod discovery.Module, args []string) (Outcome, error) {
	argv := append(append([]string{}, f.command...), args...)
	_, code, err := f.run(ctx, mod.Path, argv, false)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{OK: code == 0}, nil
}

// Check runs the list-files diagnostic form without mutating anything. Any
// file named on stdout counts as a failure regardless of the exit code.
func (f *Formatter) Check(ctx context.Context, mod discovery.Module, args []string) (Outcome, error) {
	argv := append(append([]string{}, f.command...), args...)
	argv = append(argv, f.checkArgs...)

	out, code, err := f.run(ctx, mod.Path, argv, true)
	if err != nil {
		return Outcome{}, err
	}

	var files []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		files = append(files, f.relToRoot(mod, line))
	}

	return Outcome{OK: code == 0 && len(files) == 0, Files: files}, nil
}

// relToRoot rewrites a path reported by the tool — absolute, or relative to
// the module directory — as relative to the tree root for diagnostics.
func (f *Formatter) relToRoot(mod discovery.Module, path string) string {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(mod.Path, abs)
	}
	rel, err := filepath.Rel(f.root, abs)
	if err != nil {
		return path
	}
	return rel
}
