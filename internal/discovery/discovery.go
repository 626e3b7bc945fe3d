// SPDX-License-Identifier: MPL-2.0

// Package discovery finds checkable modules beneath a root directory.
//
// A module is any directory carrying the build-manifest marker file
// (module.toml). Discovery is a pre-order depth-first walk with children
// visited in lexicographic order, so the module sequence — and therefore
// early-abort behavior — is reproducible across runs. A per-tool opt-out
// marker in a directory excludes that directory and its entire subtree.
package discovery

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	// ManifestName is the build-manifest marker file identifying a module.
	ManifestName = "module.toml"
	// OutputDirName is the build-output directory, never descended into.
	OutputDirName = "target"
	// hiddenPrefix marks directories excluded from the walk.
	hiddenPrefix = "."
)

// ErrNotAModule is returned by Single when the target directory lacks the
// build-manifest marker.
var ErrNotAModule = errors.New("not a module")

type (
	// Module is a discovered unit of the check process. Modules are found
	// fresh on every invocation, never persisted, and immutable once found.
	Module struct {
		// Path is the absolute path to the module directory.
		Path string
		// RelPath is the path relative to the walk root, used for
		// reporting. "." when the module is the root itself.
		RelPath string
		// Name is the display name from the manifest's [module] name key,
		// or RelPath when the manifest carries none.
		Name string
	}

	// Locator walks a tree and emits the modules beneath it. OptOutMarker
	// is the presence-only file name that excludes a subtree for one
	// specific tool (e.g. ".nofmt").
	Locator struct {
		OptOutMarker string
	}

	// manifest is the subset of module.toml that discovery reads. The file
	// is presence-only as far as discovery is concerned; the name is a
	// best-effort extra for reporting.
	manifest struct {
		Module struct {
			Name string `toml:"name"`
		} `toml:"module"`
	}
)

// Discover returns the ordered sequence of modules beneath root. A
// non-existent root is a hard error before any traversal begins.
func (l *Locator) Discover(root string) ([]Module, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path %s: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("target path does not exist: %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("target path is not a directory: %s", root)
	}

	var modules []Module
	if err := l.walk(absRoot, absRoot, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

// Single treats dir itself as the sole module, bypassing discovery.
// It is a hard error if dir lacks the build-manifest marker.
func (l *Locator) Single(dir string) (Module, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return Module{}, fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}

	if _, err := os.Stat(absDir); err != nil {
		return Module{}, fmt.Errorf("target path does not exist: %s: %w", dir, err)
	}
	if !hasFile(absDir, ManifestName) {
		return Module{}, fmt.Errorf("%w: %s has no %s", ErrNotAModule, dir, ManifestName)
	}
	return newModule(absDir, absDir), nil
}

// walk emits dir if it is a module, then recurses into eligible children in
// lexicographic order. The opt-out check comes first: a marked directory
// contributes nothing, nested modules included.
func (l *Locator) walk(root, dir string, modules *[]Module) error {
	if l.OptOutMarker != "" && hasFile(dir, l.OptOutMarker) {
		return nil
	}

	if hasFile(dir, ManifestName) {
		*modules = append(*modules, newModule(root, dir))
	}

	// os.ReadDir returns entries sorted by name, which fixes the traversal
	// order across runs.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, hiddenPrefix) || name == OutputDirName {
			continue
		}
		if err := l.walk(root, filepath.Join(dir, name), modules); err != nil {
			return err
		}
	}
	return nil
}

func newModule(root, dir string) Module {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		// Both paths are absolute, so this should not happen; fall back to
		// the absolute path rather than failing the walk.
		slog.Warn("failed to compute relative module path", "root", root, "dir", dir, "error", err)
		rel = dir
	}

	m := Module{Path: dir, RelPath: rel, Name: rel}
	if name := manifestName(dir); name != "" {
		m.Name = name
	}
	return m
}

// manifestName reads the display name from the manifest, best-effort. The
// marker's content never gates discovery: unreadable or unparsable
// manifests just fall back to the relative path.
func manifestName(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return ""
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		slog.Warn("ignoring unparsable module manifest", "dir", dir, "error", err)
		return ""
	}
	return m.Module.Name
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
