// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"wpmoo-cli/internal/config"
	"wpmoo-cli/internal/project"
	"wpmoo-cli/internal/registry"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func testDeps(t *testing.T, files map[string]string, startDir string) *registry.Deps {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	if err := fsys.MkdirAll(startDir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", startDir, err)
	}

	return &registry.Deps{
		Fs:      fsys,
		WorkDir: startDir,
		Context: project.Classify(fsys, startDir),
		Config:  config.Load(fsys, startDir),
	}
}

func run(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetErr(&buf)
	c.SetArgs(args)
	err := c.Execute()
	return buf.String(), err
}

func registeredIDs(deps *registry.Deps) []string {
	built := appRegistry().Build(deps)
	ids := make([]string, 0, len(built))
	for _, reg := range built {
		ids = append(ids, reg.Descriptor.ID())
	}
	return ids
}

func TestAppRegistry_UnknownContext(t *testing.T) {
	deps := testDeps(t, nil, "/empty")

	ids := registeredIDs(deps)
	want := []string{"common/config", "common/info", "common/init"}
	if strings.Join(ids, " ") != strings.Join(want, " ") {
		t.Errorf("registered = %v, want %v", ids, want)
	}
}

func TestAppRegistry_PluginContextGetsAllGroups(t *testing.T) {
	deps := testDeps(t, map[string]string{
		"/proj/manifest.json": `{"type":"wordpress-plugin"}`,
	}, "/proj")

	ids := registeredIDs(deps)
	want := "common/config common/info common/init framework/fix framework/lint framework/test plugin/pot"
	if strings.Join(ids, " ") != want {
		t.Errorf("registered = %v, want %v", ids, want)
	}
}

func TestAppRegistry_FrameworkContextExcludesPluginGroup(t *testing.T) {
	deps := testDeps(t, map[string]string{
		"/proj/manifest.json": `{"name":"wpmoo/wpmoo"}`,
	}, "/proj")

	for _, id := range registeredIDs(deps) {
		if strings.HasPrefix(id, "plugin/") {
			t.Errorf("framework context registered %s, want no plugin group", id)
		}
	}
}

func TestInfoCommand_PrintsContext(t *testing.T) {
	deps := testDeps(t, map[string]string{
		"/proj/manifest.json":    `{"type":"wordpress-theme"}`,
		"/proj/wpmoo-config.yml": "project:\n  name: Moody\n",
	}, "/proj")

	out, err := run(t, (&infoCommand{}).Cobra(deps))
	if err != nil {
		t.Fatalf("info returned error: %v", err)
	}
	if !strings.Contains(out, "theme") {
		t.Errorf("info output missing context label: %q", out)
	}
	if !strings.Contains(out, "/proj") {
		t.Errorf("info output missing config root: %q", out)
	}
}

func TestInfoCommand_UnknownContextShowsHint(t *testing.T) {
	deps := testDeps(t, nil, "/empty")

	out, err := run(t, (&infoCommand{}).Cobra(deps))
	if err != nil {
		t.Fatalf("info returned error: %v", err)
	}
	if !strings.Contains(out, "unknown") {
		t.Errorf("info output missing unknown label: %q", out)
	}
	if !strings.Contains(out, "wpmoo init") {
		t.Errorf("info output missing remediation hint: %q", out)
	}
}

func TestInitCommand_CreatesConfig(t *testing.T) {
	deps := testDeps(t, nil, "/proj")

	if _, err := run(t, (&initCommand{}).Cobra(deps)); err != nil {
		t.Fatalf("init returned error: %v", err)
	}

	store := config.Load(deps.Fs, "/proj")
	if !store.RootFound() {
		t.Fatal("init did not create a discoverable config root")
	}
	if got := store.GetString("scripts.lint", ""); got != "phpcs" {
		t.Errorf("scripts.lint = %q, want phpcs", got)
	}
	if got := store.GetString("project.name", ""); got != "proj" {
		t.Errorf("project.name = %q, want proj", got)
	}
}

func TestInitCommand_RefusesOverwriteWithoutForce(t *testing.T) {
	deps := testDeps(t, map[string]string{
		"/proj/wpmoo-config.yml": "project:\n  name: Keep\n",
	}, "/proj")

	if _, err := run(t, (&initCommand{}).Cobra(deps)); err == nil {
		t.Error("init overwrote an existing config without --force")
	}

	store := config.Load(deps.Fs, "/proj")
	if got := store.GetString("project.name", ""); got != "Keep" {
		t.Errorf("project.name = %q, existing config must be untouched", got)
	}
}

func TestInitCommand_ForceOverwrites(t *testing.T) {
	deps := testDeps(t, map[string]string{
		"/proj/wpmoo-config.yml": "project:\n  name: Old\n",
	}, "/proj")

	if _, err := run(t, (&initCommand{}).Cobra(deps), "--force"); err != nil {
		t.Fatalf("init --force returned error: %v", err)
	}

	store := config.Load(deps.Fs, "/proj")
	if got := store.GetString("project.name", ""); got != "proj" {
		t.Errorf("project.name = %q, want fresh value after --force", got)
	}
}

func TestConfigShow_PrintsMergedTree(t *testing.T) {
	deps := testDeps(t, map[string]string{
		"/proj/wpmoo-config.yml":                "project:\n  name: Foo\n",
		"/proj/wpmoo-config/wpmoo-settings.yml": "project:\n  name: Bar\n",
	}, "/proj")

	out, err := run(t, (&configCommand{}).Cobra(deps), "show")
	if err != nil {
		t.Fatalf("config show returned error: %v", err)
	}
	if !strings.Contains(out, "name: Bar") {
		t.Errorf("config show = %q, want merged value Bar", out)
	}
}

func TestConfigGet_ReturnsHighestPriorityValue(t *testing.T) {
	deps := testDeps(t, map[string]string{
		"/proj/wpmoo-config.yml":                "project:\n  name: Foo\n",
		"/proj/wpmoo-config/wpmoo-settings.yml": "project:\n  name: Bar\n",
	}, "/proj")

	out, err := run(t, (&configCommand{}).Cobra(deps), "get", "project.name")
	if err != nil {
		t.Fatalf("config get returned error: %v", err)
	}
	if strings.TrimSpace(out) != "Bar" {
		t.Errorf("config get project.name = %q, want Bar", strings.TrimSpace(out))
	}
}

func TestConfigGet_MissingKeyFails(t *testing.T) {
	deps := testDeps(t, nil, "/proj")

	if _, err := run(t, (&configCommand{}).Cobra(deps), "get", "no.such.key"); err == nil {
		t.Error("config get on a missing key returned nil error")
	}
}

func TestScriptCommand_EmptyCommandLineFails(t *testing.T) {
	deps := testDeps(t, map[string]string{
		"/proj/wpmoo-config.yml": "scripts:\n  lint: \"\"\n",
	}, "/proj")

	sc := newScriptCommand("lint", "Check coding standards", "scripts.lint", "")
	if _, err := run(t, sc.Cobra(deps)); err == nil {
		t.Error("script command with empty command line returned nil error")
	}
}
