// SPDX-License-Identifier: MPL-2.0

// Package params produces the ordered parameter sets a module is checked
// with, read from a per-module parameter file or falling back to a single
// default set when the file is absent.
package params

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Per-tool parameter file names, one file per line-oriented set of check
// arguments inside the module directory.
const (
	FmtFileName  = ".fmtargs"
	LintFileName = ".lintargs"

	commentMarker = "#"
)

// Source reads parameter sets for modules. FileName is the conventional
// per-module parameter file; Default is the single baseline set used when
// the file is absent.
type Source struct {
	FileName string
	Default  []string
}

// Sets returns the ordered parameter sets for the module at dir.
//
// Each non-blank, non-comment line of the parameter file is one set, in
// file order. A file that is present but yields zero usable lines means
// the module is checked zero times: a silent no-op, not an error. An
// absent file yields exactly one copy of the default set.
func (s *Source) Sets(dir string) ([][]string, error) {
	data, err := os.ReadFile(filepath.Join(dir, s.FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return [][]string{slices.Clone(s.Default)}, nil
		}
		return nil, fmt.Errorf("failed to read parameter file %s: %w", filepath.Join(dir, s.FileName), err)
	}

	var sets [][]string
	for _, line := range strings.Split(string(data), "\n") {
		set := Tokenize(line)
		if len(set) == 0 {
			continue
		}
		if strings.HasPrefix(set[0], commentMarker) {
			continue
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// Tokenize splits one parameter line on runs of whitespace, trimming the
// ends. There is deliberately no quoting support: a parameter value cannot
// contain embedded whitespace, mirroring how the tool has always split
// arguments.
func Tokenize(line string) []string {
	return strings.Fields(line)
}
