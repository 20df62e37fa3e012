// SPDX-License-Identifier: MPL-2.0

// Package pathwalk implements the upward directory search used to locate
// project markers (manifests, configuration roots) from a starting directory.
package pathwalk

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Predicate reports whether a directory satisfies the search condition.
// It must not mutate filesystem state.
type Predicate func(fsys afero.Fs, dir string) bool

// FindUpward walks from startDir toward the filesystem root, testing pred at
// each level. It returns the first directory for which pred is true. The root
// directory itself is tested before giving up: the walk stops only after the
// parent of the current directory equals the current directory and the
// predicate has failed there too.
func FindUpward(fsys afero.Fs, startDir string, pred Predicate) (string, bool) {
	dir := filepath.Clean(startDir)

	for {
		if pred(fsys, dir) {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Any combines predicates; the result is true when any of them matches.
func Any(preds ...Predicate) Predicate {
	return func(fsys afero.Fs, dir string) bool {
		for _, pred := range preds {
			if pred(fsys, dir) {
				return true
			}
		}
		return false
	}
}

// FileExists is a convenience predicate factory matching directories that
// contain any of the given file names (regular files, not directories).
func FileExists(names ...string) Predicate {
	return func(fsys afero.Fs, dir string) bool {
		for _, name := range names {
			info, err := fsys.Stat(filepath.Join(dir, name))
			if err == nil && !info.IsDir() {
				return true
			}
		}
		return false
	}
}

// RelExists is a convenience predicate factory matching directories that
// contain any of the given relative paths, regardless of whether the final
// element is a file or a directory.
func RelExists(paths ...string) Predicate {
	return func(fsys afero.Fs, dir string) bool {
		for _, rel := range paths {
			if _, err := fsys.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err == nil {
				return true
			}
		}
		return false
	}
}
