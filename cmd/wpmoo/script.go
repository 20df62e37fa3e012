// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os/exec"
	"strings"

	"wpmoo-cli/internal/issue"
	"wpmoo-cli/internal/registry"

	"github.com/spf13/cobra"
)

// scriptCommand wraps one external tool. The command line comes from the
// merged project configuration (falling back to a default), extra CLI
// arguments are appended, and the tool's exit code is relayed unchanged.
type scriptCommand struct {
	name        string
	description string
	configKey   string
	defaultLine string
}

func newScriptCommand(name, description, configKey, defaultLine string) *scriptCommand {
	return &scriptCommand{
		name:        name,
		description: description,
		configKey:   configKey,
		defaultLine: defaultLine,
	}
}

func (c *scriptCommand) Descriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        c.name,
		Description: c.description,
	}
}

func (c *scriptCommand) Cobra(deps *registry.Deps) *cobra.Command {
	return &cobra.Command{
		Use:   c.name + " [args...]",
		Short: c.description,
		// The wrapped tool owns the exit status; cobra usage output on
		// failure would bury it.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			line := deps.Config.GetString(c.configKey, c.defaultLine)
			argv := strings.Fields(line)
			if len(argv) == 0 {
				return issue.NewErrorContext().
					WithOperation("run " + c.name).
					WithResource(c.configKey).
					WithSuggestion("Set a command line under '" + c.configKey + "' in the project config").
					Wrap(errors.New("empty command line")).
					BuildError()
			}
			argv = append(argv, args...)

			proc := exec.CommandContext(cmd.Context(), argv[0], argv[1:]...)
			proc.Dir = deps.WorkDir
			proc.Stdin = cmd.InOrStdin()
			proc.Stdout = cmd.OutOrStdout()
			proc.Stderr = cmd.ErrOrStderr()

			if err := proc.Run(); err != nil {
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					return &ExitError{Code: exitErr.ExitCode(), Err: err}
				}
				return issue.NewErrorContext().
					WithOperation("run " + c.name).
					WithResource(argv[0]).
					WithSuggestion("Check that '" + argv[0] + "' is installed and on PATH").
					WithSuggestion("Override the command line under '" + c.configKey + "' in the project config").
					Wrap(err).
					BuildError()
			}
			return nil
		},
	}
}
