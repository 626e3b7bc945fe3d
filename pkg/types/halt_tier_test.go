// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestParseHaltTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    HaltTier
		wantErr bool
	}{
		{name: "none", input: "none", want: HaltNone},
		{name: "module", input: "module", want: HaltModule},
		{name: "parameter", input: "parameter", want: HaltParameter},
		{name: "empty is invalid", input: "", wantErr: true},
		{name: "unknown is invalid", input: "file", wantErr: true},
		{name: "case sensitive", input: "Module", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseHaltTier(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHaltTier(%q) succeeded, want error", tt.input)
				}
				if !errors.Is(err, ErrInvalidHaltTier) {
					t.Errorf("error does not wrap ErrInvalidHaltTier: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHaltTier(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHaltTier(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHaltTierOrdering(t *testing.T) {
	t.Parallel()

	if !(HaltNone < HaltModule && HaltModule < HaltParameter) {
		t.Error("halt tiers are not ordered none < module < parameter")
	}
}

func TestHaltTierStopsAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tier  HaltTier
		level HaltTier
		want  bool
	}{
		{name: "none never stops at parameter level", tier: HaltNone, level: HaltParameter, want: false},
		{name: "none never stops at module level", tier: HaltNone, level: HaltModule, want: false},
		{name: "module does not stop mid-module", tier: HaltModule, level: HaltParameter, want: false},
		{name: "module stops at module boundary", tier: HaltModule, level: HaltModule, want: true},
		{name: "parameter stops immediately", tier: HaltParameter, level: HaltParameter, want: true},
		{name: "parameter stops at module boundary too", tier: HaltParameter, level: HaltModule, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.tier.StopsAt(tt.level); got != tt.want {
				t.Errorf("HaltTier(%v).StopsAt(%v) = %v, want %v", tt.tier, tt.level, got, tt.want)
			}
		})
	}
}

func TestHaltTierString(t *testing.T) {
	t.Parallel()

	for _, tier := range []HaltTier{HaltNone, HaltModule, HaltParameter} {
		parsed, err := ParseHaltTier(tier.String())
		if err != nil {
			t.Fatalf("ParseHaltTier(%q) error = %v", tier.String(), err)
		}
		if parsed != tier {
			t.Errorf("round trip of %v produced %v", tier, parsed)
		}
	}
}
