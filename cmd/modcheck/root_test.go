// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/modcheck/modcheck/internal/issue"
)

func TestGetVersionString(t *testing.T) {
	if got := getVersionString(); !strings.Contains(got, "dev") {
		t.Errorf("getVersionString() = %q, want dev marker for source builds", got)
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain failure")
	if got := formatErrorForDisplay(plain, false); got != "plain failure" {
		t.Errorf("formatErrorForDisplay() = %q, want %q", got, "plain failure")
	}

	actionable := issue.NewErrorContext().
		WithOperation("locate modules").
		WithSuggestion("Check the target path").
		Build()
	got := formatErrorForDisplay(actionable, false)
	if !strings.Contains(got, "failed to locate modules") {
		t.Errorf("formatErrorForDisplay() = %q, missing operation", got)
	}
	if !strings.Contains(got, "Check the target path") {
		t.Errorf("formatErrorForDisplay() = %q, missing suggestion", got)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	t.Parallel()

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"fmt", "lint"} {
		if !names[want] {
			t.Errorf("root command is missing the %q subcommand", want)
		}
	}
}
