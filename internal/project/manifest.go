// SPDX-License-Identifier: MPL-2.0

package project

import (
	"encoding/json"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// ManifestName is the project metadata file searched for during
	// classification.
	ManifestName = "manifest.json"

	// CLIPackage is the reserved package name of the wpmoo CLI itself.
	CLIPackage = "wpmoo/wpmoo-cli"
	// FrameworkPackage is the reserved package name of the wpmoo framework.
	FrameworkPackage = "wpmoo/wpmoo"

	// TypePlugin is the manifest type declared by WordPress plugins.
	TypePlugin = "wordpress-plugin"
	// TypeTheme is the manifest type declared by WordPress themes.
	TypeTheme = "wordpress-theme"
)

// Manifest is the subset of project metadata relevant to classification.
type Manifest struct {
	Name         string            `json:"name"`
	Type         string            `json:"type"`
	Dependencies map[string]string `json:"dependencies"`
}

// readManifest loads and parses dir/manifest.json. A missing or unparseable
// manifest returns ok=false: malformed metadata is treated the same as absent
// metadata so classification can fall through to the next rule.
func readManifest(fsys afero.Fs, dir string) (*Manifest, bool) {
	data, err := afero.ReadFile(fsys, filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, false
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, false
	}
	return &m, true
}

// requiresFramework reports whether the manifest lists the framework package
// as a dependency.
func (m *Manifest) requiresFramework() bool {
	_, ok := m.Dependencies[FrameworkPackage]
	return ok
}
