// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"wpmoo-cli/internal/issue"
	"wpmoo-cli/internal/project"
	"wpmoo-cli/internal/registry"

	"github.com/spf13/cobra"
)

// infoCommand reports the resolved project context and configuration roots.
type infoCommand struct{}

func (c *infoCommand) Descriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "info",
		Description: "Show the resolved project context and configuration",
	}
}

func (c *infoCommand) Cobra(deps *registry.Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: c.Descriptor().Description,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Context:"), deps.Context)
			fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Directory:"), deps.WorkDir)

			if deps.Config.RootFound() {
				fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Config root:"), deps.Config.Root())
			} else {
				fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Config root:"), "none (using "+deps.Config.Root()+")")
			}

			if deps.Context == project.ContextUnknown {
				fmt.Fprintln(out, issue.RenderHint(issue.UnknownProjectHint))
			} else if !deps.Config.RootFound() && verbose {
				fmt.Fprintln(out, issue.RenderHint(issue.NoConfigHint))
			}

			return nil
		},
	}
}
