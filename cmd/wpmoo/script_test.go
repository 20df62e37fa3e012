// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"wpmoo-cli/internal/config"
	"wpmoo-cli/internal/project"
	"wpmoo-cli/internal/registry"

	"github.com/spf13/afero"
)

// realDeps builds deps against the real filesystem so wrapped subprocesses
// can actually run.
func realDeps(t *testing.T, configYAML string) *registry.Deps {
	t.Helper()

	tmp := t.TempDir()
	fsys := afero.NewOsFs()
	if err := os.WriteFile(filepath.Join(tmp, config.LegacyFileName), []byte(configYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &registry.Deps{
		Fs:      fsys,
		WorkDir: tmp,
		Context: project.ContextFramework,
		Config:  config.Load(fsys, tmp),
	}
}

func TestScriptCommand_SuccessfulRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on the 'true' binary")
	}

	deps := realDeps(t, "scripts:\n  lint: \"true\"\n")
	sc := newScriptCommand("lint", "Check coding standards", "scripts.lint", "phpcs")

	if _, err := run(t, sc.Cobra(deps)); err != nil {
		t.Errorf("script wrapping 'true' returned error: %v", err)
	}
}

func TestScriptCommand_RelaysNonZeroExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on the 'false' binary")
	}

	deps := realDeps(t, "scripts:\n  lint: \"false\"\n")
	sc := newScriptCommand("lint", "Check coding standards", "scripts.lint", "phpcs")

	_, err := run(t, sc.Cobra(deps))
	if err == nil {
		t.Fatal("script wrapping 'false' returned nil error")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %T, want *ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("ExitError.Code = %d, want 1", exitErr.Code)
	}
}

func TestScriptCommand_MissingBinaryIsActionable(t *testing.T) {
	deps := realDeps(t, "scripts:\n  lint: wpmoo-definitely-not-installed\n")
	sc := newScriptCommand("lint", "Check coding standards", "scripts.lint", "phpcs")

	_, err := run(t, sc.Cobra(deps))
	if err == nil {
		t.Fatal("script wrapping a missing binary returned nil error")
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		t.Error("missing binary reported as ExitError, want actionable error")
	}
}
