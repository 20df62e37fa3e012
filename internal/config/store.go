// SPDX-License-Identifier: MPL-2.0

// Package config loads and merges project configuration. A project may carry
// a legacy monolithic config file, a primary config directory, and an
// alternate config directory; their parsed trees are merged in a fixed
// priority order into a single lookup structure.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"wpmoo-cli/internal/pathwalk"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	// LegacyFileName is the single-file configuration format. It has the
	// lowest merge priority and is the target of Save.
	LegacyFileName = "wpmoo-config.yml"
	// PrimaryDirName is the primary configuration directory.
	PrimaryDirName = "wpmoo-config"
	// AltDirName is the alternate configuration directory, merged last
	// with the highest priority.
	AltDirName = ".wpmoo"
	// SettingsFileName holds general settings inside a config directory.
	SettingsFileName = "wpmoo-settings.yml"
	// DeployFileName holds deployment settings inside a config directory.
	DeployFileName = "wpmoo-deploy.yml"
)

// Tree is a parsed configuration mapping. Keys are case-sensitive; values
// may be nested Trees, lists, or scalars.
type Tree = map[string]any

// sourceOrder lists every configuration source relative to the project
// root, lowest priority first. Later entries override earlier ones.
var sourceOrder = []string{
	LegacyFileName,
	PrimaryDirName + "/" + SettingsFileName,
	PrimaryDirName + "/" + DeployFileName,
	AltDirName + "/" + SettingsFileName,
	AltDirName + "/" + DeployFileName,
}

// Store holds the merged configuration tree for one project root. It is
// built once per invocation and read-only afterward; Save is the only write
// operation and never mutates the in-memory tree.
type Store struct {
	fsys      afero.Fs
	root      string
	rootFound bool
	tree      Tree
}

// Load resolves the configuration root upward from startDir and merges every
// configuration source found there. When no root is found the store carries
// an empty tree and startDir as its root, so callers always have a writable
// target. Individual files that fail to parse contribute nothing.
func Load(fsys afero.Fs, startDir string) *Store {
	// The legacy marker must be a regular file; a directory of the same
	// name is not a configuration source.
	root, found := pathwalk.FindUpward(fsys, startDir, pathwalk.Any(
		pathwalk.FileExists(LegacyFileName),
		pathwalk.RelExists(
			PrimaryDirName+"/"+SettingsFileName,
			AltDirName+"/"+SettingsFileName,
		),
	))
	if !found {
		root = filepath.Clean(startDir)
	}

	tree := Tree{}
	if found {
		for _, rel := range sourceOrder {
			src := loadFile(fsys, filepath.Join(root, filepath.FromSlash(rel)))
			tree = Merge(tree, src)
		}
	}

	return &Store{fsys: fsys, root: root, rootFound: found, tree: tree}
}

// loadFile parses one YAML source. Missing or malformed files yield an empty
// tree so a bad deployment file cannot block the settings merged around it.
func loadFile(fsys afero.Fs, path string) Tree {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return Tree{}
	}

	var tree Tree
	if err := yaml.Unmarshal(data, &tree); err != nil || tree == nil {
		return Tree{}
	}
	return tree
}

// Root returns the directory the configuration was resolved against.
func (s *Store) Root() string {
	return s.root
}

// RootFound reports whether any configuration marker was found; when false,
// Root is the start directory the store was loaded from.
func (s *Store) RootFound() bool {
	return s.rootFound
}

// Get walks the merged tree along the dotted key path and returns the value
// found there, or def the moment any path segment is absent or a non-mapping
// value is traversed.
func (s *Store) Get(key string, def any) any {
	var current any = s.tree

	for _, seg := range strings.Split(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return def
		}
		current, ok = m[seg]
		if !ok {
			return def
		}
	}

	return current
}

// GetString is Get narrowed to string values; non-string matches return def.
func (s *Store) GetString(key, def string) string {
	if v, ok := s.Get(key, def).(string); ok {
		return v
	}
	return def
}

// All returns a deep copy of the merged tree.
func (s *Store) All() Tree {
	return copyTree(s.tree)
}

// Save serializes data as YAML and atomically replaces dir's legacy config
// file with it. Existing content is overwritten, never merged. The write
// goes through a temporary file followed by a rename so concurrent readers
// never observe a truncated file.
func Save(fsys afero.Fs, dir string, data Tree) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	target := filepath.Join(dir, LegacyFileName)
	tmp := target + ".tmp"

	if err := afero.WriteFile(fsys, tmp, out, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := fsys.Rename(tmp, target); err != nil {
		_ = fsys.Remove(tmp)
		return fmt.Errorf("replacing config: %w", err)
	}

	return nil
}
