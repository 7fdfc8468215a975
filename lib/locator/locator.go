// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package locator resolves executables by name on the host. It is the
// injectable replacement for asking the shell "which Xephyr": callers
// depend on the [Locator] interface, production code uses
// [PathLocator], and tests substitute a fake.
//
// Resolution order is the host's own: the first match on PATH wins,
// exactly as exec.LookPath (and which(1)) report it, except that
// relative entries such as "." are skipped. No sorting or preference is
// applied on top. When nothing on PATH matches,
// PathLocator consults its fallback directories in the order given,
// which covers installations that live outside PATH by default (for
// example a Nix profile bin directory).
package locator

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
)

// Locator resolves an executable name to an absolute path. The boolean
// is false when no match exists; the path is then empty and must not be
// used.
type Locator interface {
	Resolve(name string) (string, bool)
}

// PathLocator resolves executables from PATH, then from Fallback.
type PathLocator struct {
	// Fallback lists directories searched, in order, when PATH has no
	// match.
	Fallback []string
}

// NewPathLocator returns a PathLocator that searches PATH and then the
// given fallback directories.
func NewPathLocator(fallback ...string) *PathLocator {
	return &PathLocator{Fallback: fallback}
}

// Resolve implements [Locator].
//
// Names containing a path separator are not searched for: they are
// checked directly, the way exec.LookPath treats them. Relative PATH
// entries such as "." never resolve a name. When exec.LookPath stops
// at one (exec.ErrDot), the remaining absolute PATH entries are
// searched in order, then the fallback directories.
func (l *PathLocator) Resolve(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	if path, err := exec.LookPath(name); err == nil {
		if absolute, ok := absoluteExecutable(path); ok {
			return absolute, true
		}
	} else if errors.Is(err, exec.ErrDot) {
		if absolute, ok := searchAbsolutePath(name); ok {
			return absolute, true
		}
	}

	if filepath.Base(name) != name {
		return "", false
	}

	for _, directory := range l.Fallback {
		if directory == "" {
			continue
		}
		if absolute, ok := absoluteExecutable(filepath.Join(directory, name)); ok {
			return absolute, true
		}
	}

	return "", false
}

// searchAbsolutePath walks PATH the way exec.LookPath does, skipping
// relative entries.
func searchAbsolutePath(name string) (string, bool) {
	if filepath.Base(name) != name {
		return "", false
	}
	for _, directory := range filepath.SplitList(os.Getenv("PATH")) {
		if !filepath.IsAbs(directory) {
			continue
		}
		if absolute, ok := absoluteExecutable(filepath.Join(directory, name)); ok {
			return absolute, true
		}
	}
	return "", false
}

// absoluteExecutable returns the absolute form of path if it names a
// regular file with at least one execute bit set.
func absoluteExecutable(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() || info.Mode().Perm()&0o111 == 0 {
		return "", false
	}
	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	return absolute, true
}
