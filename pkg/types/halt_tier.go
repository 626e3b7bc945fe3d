// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
)

// ErrInvalidHaltTier is the sentinel error wrapped by InvalidHaltTierError.
var ErrInvalidHaltTier = errors.New("invalid halt tier")

const (
	// HaltNone never aborts early: every module and every parameter set is
	// attempted and failures are summed.
	HaltNone HaltTier = iota
	// HaltModule aborts the run after the first module that recorded a
	// failure, once that module's parameter-set loop completes.
	HaltModule
	// HaltParameter aborts the run immediately after the first failing
	// invocation, without trying the module's remaining parameter sets.
	HaltParameter
)

type (
	// HaltTier is the granularity at which the orchestrator is permitted to
	// abort early after a failure. Tiers are ordered
	// HaltNone < HaltModule < HaltParameter; a higher tier is strictly more
	// eager to abort.
	HaltTier int

	// InvalidHaltTierError is returned when a string does not name a halt
	// tier.
	InvalidHaltTierError struct {
		Value string
	}
)

// ParseHaltTier converts a --halt-on flag value into a HaltTier.
func ParseHaltTier(s string) (HaltTier, error) {
	switch s {
	case "none":
		return HaltNone, nil
	case "module":
		return HaltModule, nil
	case "parameter":
		return HaltParameter, nil
	default:
		return HaltNone, &InvalidHaltTierError{Value: s}
	}
}

// Error implements the error interface.
func (e *InvalidHaltTierError) Error() string {
	return fmt.Sprintf("invalid halt tier %q (must be none, module, or parameter)", e.Value)
}

// Unwrap returns ErrInvalidHaltTier so callers can use errors.Is for programmatic detection.
func (e *InvalidHaltTierError) Unwrap() error { return ErrInvalidHaltTier }

// StopsAt reports whether this tier aborts the run at the given iteration
// level: invocation outcomes are judged against HaltParameter, completed
// module loops against HaltModule. HaltNone is below both levels and so
// never stops.
func (t HaltTier) StopsAt(level HaltTier) bool {
	return t >= level && level > HaltNone
}

// String returns the flag spelling of the HaltTier.
func (t HaltTier) String() string {
	switch t {
	case HaltNone:
		return "none"
	case HaltModule:
		return "module"
	case HaltParameter:
		return "parameter"
	default:
		return fmt.Sprintf("HaltTier(%d)", int(t))
	}
}
