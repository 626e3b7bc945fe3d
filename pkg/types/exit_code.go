// SPDX-License-Identifier: MPL-2.0

// Package types defines cross-cutting value types shared by the CLI and the
// internal packages (exit codes, halt tiers). It is a leaf dependency: it
// imports only the standard library.
package types

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

// Fixed exit codes for error classes that are not check failures. Check
// failures exit with the aggregate failure count instead (see
// ExitCodeFromFailures).
const (
	// ExitSuccess means every invocation passed.
	ExitSuccess ExitCode = 0
	// ExitUsageError means the command line could not be parsed.
	ExitUsageError ExitCode = 2
	// ExitConfigError means the run could not start: missing target path,
	// --single-module on a non-module directory, or an unrunnable check
	// command.
	ExitConfigError ExitCode = 3
)

type (
	// ExitCode represents a process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	// The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// valid range (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// ExitCodeFromFailures converts an aggregate failure count into a process
// exit code, clamping to the top of the POSIX range so a run with more than
// 255 failures cannot wrap around to a "successful" status.
func ExitCodeFromFailures(failures int) ExitCode {
	if failures < 0 || failures > 255 {
		return ExitCode(255)
	}
	return ExitCode(failures)
}

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is outside the valid range (0-255).
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
