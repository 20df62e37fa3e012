// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	err := NewErrorContext().
		WithOperation("write project config").
		WithResource("/proj/wpmoo-config.yml").
		Wrap(errors.New("permission denied")).
		BuildError()

	want := "failed to write project config: /proj/wpmoo-config.yml: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestActionableError_FormatIncludesSuggestions(t *testing.T) {
	ae := NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Check YAML syntax").
		WithSuggestion("Run 'wpmoo init' to create a fresh config").
		Build()

	out := ae.Format(false)
	if !strings.Contains(out, "Check YAML syntax") {
		t.Errorf("Format() missing first suggestion: %q", out)
	}
	if !strings.Contains(out, "wpmoo init") {
		t.Errorf("Format() missing second suggestion: %q", out)
	}
}

func TestActionableError_VerboseFormatShowsChain(t *testing.T) {
	inner := errors.New("disk full")
	ae := NewErrorContext().
		WithOperation("write project config").
		Wrap(fmt.Errorf("flushing buffer: %w", inner)).
		Build()

	out := ae.Format(true)
	if !strings.Contains(out, "Error chain:") {
		t.Errorf("Format(true) missing error chain: %q", out)
	}
	if !strings.Contains(out, "disk full") {
		t.Errorf("Format(true) missing root cause: %q", out)
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewErrorContext().WithOperation("do thing").Wrap(cause).BuildError()

	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not find the wrapped cause")
	}
}

func TestBuild_RequiresOperation(t *testing.T) {
	if err := NewErrorContext().WithResource("/x").BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestRenderHint_FallsBackToRawMarkdown(t *testing.T) {
	orig := render
	defer func() { render = orig }()
	render = func(string, string) (string, error) {
		return "", errors.New("no terminal")
	}

	if got := RenderHint(UnknownProjectHint); got != UnknownProjectHint {
		t.Error("RenderHint() did not fall back to raw markdown on render failure")
	}
}
