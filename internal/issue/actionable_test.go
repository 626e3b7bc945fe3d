// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "locate modules"},
			expected: "failed to locate modules",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "locate modules",
				Resource:  "/srv/tree",
			},
			expected: "failed to locate modules: /srv/tree",
		},
		{
			name: "operation with resource and cause",
			err: &ActionableError{
				Operation: "read parameter file",
				Resource:  ".lintargs",
				Cause:     errors.New("permission denied"),
			},
			expected: "failed to read parameter file: .lintargs: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableErrorFormat(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().
		WithOperation("run check command").
		WithResource("cargo").
		WithSuggestion("Check that the command is installed").
		WithSuggestion("Check your PATH").
		Wrap(errors.New("executable file not found")).
		Build()

	short := err.Format(false)
	if !strings.Contains(short, "failed to run check command: cargo") {
		t.Errorf("Format(false) missing message: %q", short)
	}
	if !strings.Contains(short, "• Check that the command is installed") {
		t.Errorf("Format(false) missing first suggestion: %q", short)
	}
	if !strings.Contains(short, "• Check your PATH") {
		t.Errorf("Format(false) missing second suggestion: %q", short)
	}
	if strings.Contains(short, "Error chain:") {
		t.Errorf("Format(false) should not include error chain: %q", short)
	}

	long := err.Format(true)
	if !strings.Contains(long, "Error chain:") {
		t.Errorf("Format(true) missing error chain: %q", long)
	}
	if !strings.Contains(long, "1. executable file not found") {
		t.Errorf("Format(true) missing chain entry: %q", long)
	}
}

func TestActionableErrorUnwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	err := WrapWithOperation(sentinel, "discover tree")
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is does not find the wrapped cause")
	}

	if WrapWithOperation(nil, "noop") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
}
