// SPDX-License-Identifier: MPL-2.0

package checker

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"

	"github.com/modcheck/modcheck/internal/issue"
)

// runFunc executes argv with dir as working directory and reports the
// command's exit code. When capture is true, stdout is collected and
// returned; otherwise it streams through to the caller's stdout. stderr
// always streams through. A non-nil error means the command could not be
// started at all.
type runFunc func(ctx context.Context, dir string, argv []string, capture bool) (stdout string, exitCode int, err error)

// runCommand is the production runFunc, waiting synchronously for the
// spawned command to exit. There is no timeout: a check command that runs
// forever blocks the whole tool.
func runCommand(ctx context.Context, dir string, argv []string, capture bool) (string, int, error) {
	if len(argv) == 0 {
		return "", 0, issue.NewErrorContext().
			WithOperation("run check command").
			WithSuggestion("Set a non-empty command in the modcheck config").
			Build()
	}

	slog.Debug("running check command", "dir", dir, "argv", argv)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stderr = os.Stderr

	var captured bytes.Buffer
	if capture {
		cmd.Stdout = &captured
	} else {
		cmd.Stdout = os.Stdout
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The tool ran and reported a status; that is never fatal here.
			return captured.String(), exitErr.ExitCode(), nil
		}
		return "", 0, issue.NewErrorContext().
			WithOperation("run check command").
			WithResource(argv[0]).
			WithSuggestion("Check that the command is installed and on your PATH").
			WithSuggestion("Override the command in the modcheck config if it lives elsewhere").
			Wrap(err).
			Build()
	}

	return captured.String(), 0, nil
}
