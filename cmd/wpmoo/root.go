// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for wpmoo.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"wpmoo-cli/internal/config"
	"wpmoo-cli/internal/issue"
	"wpmoo-cli/internal/project"
	"wpmoo-cli/internal/registry"
	"wpmoo-cli/internal/settings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "wpmoo",
		Short: "A context-aware WordPress project tool",
		Long: TitleStyle.Render("wpmoo") + SubtitleStyle.Render(" - A context-aware WordPress project tool") + `

wpmoo adapts to the project it is invoked in: inside the wpmoo framework,
a plugin, or a theme it exposes the command groups that make sense there,
and every command sees the project's merged configuration.

` + SubtitleStyle.Render("Configuration sources (lowest to highest priority):") + `
  wpmoo-config.yml                      legacy single file
  wpmoo-config/wpmoo-settings.yml       general settings
  wpmoo-config/wpmoo-deploy.yml         deployment settings
  .wpmoo/                               alternate directory, same files

` + SubtitleStyle.Render("Examples:") + `
  wpmoo info                Show the resolved project context
  wpmoo init                Create a fresh project configuration
  wpmoo config show         Show the merged configuration tree`,
	}
)

func init() {
	cobra.OnInitialize(initUserSettings)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute resolves the project context for the working directory, attaches
// the eligible command groups, and runs the CLI. It is called once by
// main.main().
//
// Version-only invocations skip project resolution entirely: the version
// does not depend on the context, and the resolution may involve a full
// source scan. Help output keeps the resolution, since the visible command
// set depends on the resolved context.
func Execute() {
	if !versionOnly(os.Args[1:]) {
		fsys := afero.NewOsFs()
		appRegistry().Attach(rootCmd, resolveDeps(fsys))
	}

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// versionOnly reports whether the invocation asks for nothing but the
// version string.
func versionOnly(args []string) bool {
	return len(args) == 1 && args[0] == "--version"
}

// resolveDeps runs the resolution engine once for this invocation: classify
// the start directory and load its merged configuration. The start directory
// is the working directory unless WPMOO_DIR overrides it, and is passed down
// explicitly from here so nothing below reads it ambiently.
func resolveDeps(fsys afero.Fs) *registry.Deps {
	startDir := os.Getenv("WPMOO_DIR")
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			// Degrade rather than refuse to run; everything downstream
			// handles an unresolvable directory as absence.
			wd = "."
		}
		startDir = wd
	}

	return &registry.Deps{
		Fs:      fsys,
		WorkDir: startDir,
		Context: project.Classify(fsys, startDir),
		Config:  config.Load(fsys, startDir),
	}
}

// initUserSettings reads the user-level settings file once flags are parsed.
func initUserSettings() {
	s, err := settings.Load(afero.NewOsFs())
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	// Apply verbose from settings if not set via flag
	if s != nil && !verbose {
		verbose = s.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their own Format method; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
