// SPDX-License-Identifier: MPL-2.0

// Package project resolves the kind of project a working directory belongs
// to. The primary signal is the nearest manifest found walking upward; a
// best-effort content scan of source files is the fallback for projects
// without one.
package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"wpmoo-cli/internal/pathwalk"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// maxScanFileSize caps how much of a single source file the fallback scan is
// willing to read.
const maxScanFileSize = 1 << 20

// scanExtensions are the source file types inspected by the fallback scan.
// WordPress header tags live in plugin PHP entry points and theme stylesheets.
var scanExtensions = map[string]bool{
	".php": true,
	".css": true,
}

const (
	pluginHeaderTag = "plugin name:"
	themeHeaderTag  = "theme name:"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "wpmoo"})

// Classify resolves the project context for startDir. It never fails: the
// absence of a clear signal resolves to ContextUnknown.
//
// Rules, first match wins:
//  1. the nearest ancestor manifest's declared name, type, or framework
//     dependency,
//  2. a content scan of source files under startDir for framework header
//     tags,
//  3. ContextUnknown.
func Classify(fsys afero.Fs, startDir string) Context {
	if m, ok := nearestManifest(fsys, startDir); ok {
		if ctx, ok := classifyManifest(m); ok {
			return ctx
		}
	}

	if ctx, ok := scanSources(fsys, startDir); ok {
		// The scan is order-dependent and heuristic; surface that the
		// label was not derived from a manifest.
		logger.Warn("project classified by source scan; add a manifest for a reliable result",
			"dir", startDir, "context", ctx)
		return ctx
	}

	return ContextUnknown
}

// nearestManifest walks upward from startDir and returns the first manifest
// that parses. A directory whose manifest is malformed is treated as having
// no manifest at all, so the walk continues toward the root.
func nearestManifest(fsys afero.Fs, startDir string) (*Manifest, bool) {
	var found *Manifest

	_, ok := pathwalk.FindUpward(fsys, startDir, func(fsys afero.Fs, dir string) bool {
		m, ok := readManifest(fsys, dir)
		if ok {
			found = m
		}
		return ok
	})

	return found, ok
}

// classifyManifest applies the manifest rules in order. ok is false when the
// manifest carries no recognizable signal.
func classifyManifest(m *Manifest) (Context, bool) {
	switch m.Name {
	case CLIPackage:
		return ContextCLITool, true
	case FrameworkPackage:
		return ContextFramework, true
	}

	switch m.Type {
	case TypePlugin:
		return ContextPlugin, true
	case TypeTheme:
		return ContextTheme, true
	}

	if m.requiresFramework() {
		return ContextPlugin, true
	}

	return ContextUnknown, false
}

// errScanDone stops the walk early once a file has decided the label.
var errScanDone = errors.New("scan done")

// scanSources enumerates source files under startDir in lexical order and
// returns the label of the first file that both mentions the framework and
// carries a plugin/theme header tag. The lexical walk order makes the result
// deterministic across platforms.
func scanSources(fsys afero.Fs, startDir string) (Context, bool) {
	result := ContextUnknown

	_ = afero.Walk(fsys, startDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // degrade to absence on access errors
		}
		if info.IsDir() || !scanExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if info.Size() > maxScanFileSize {
			return nil
		}

		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return nil
		}

		if ctx, ok := classifyContent(string(data)); ok {
			result = ctx
			return errScanDone
		}
		return nil
	})

	return result, result != ContextUnknown
}

// classifyContent checks one file's content for both required signals: a
// case-insensitive mention of the framework name and a header tag at the
// start of a line, ignoring leading whitespace and comment markers.
func classifyContent(content string) (Context, bool) {
	lower := strings.ToLower(content)
	if !strings.Contains(lower, "wpmoo") {
		return ContextUnknown, false
	}

	for _, line := range strings.Split(lower, "\n") {
		line = strings.TrimLeft(line, " \t")
		line = strings.TrimLeft(line, "/*#;")
		line = strings.TrimLeft(line, " \t")

		if strings.HasPrefix(line, pluginHeaderTag) {
			return ContextPlugin, true
		}
		if strings.HasPrefix(line, themeHeaderTag) {
			return ContextTheme, true
		}
	}

	return ContextUnknown, false
}
