// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"wpmoo-cli/internal/issue"
	"wpmoo-cli/internal/registry"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCommand exposes the merged project configuration tree.
type configCommand struct{}

func (c *configCommand) Descriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "config",
		Description: "Inspect the merged project configuration",
	}
}

func (c *configCommand) Cobra(deps *registry.Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: c.Descriptor().Description,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration tree as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree := deps.Config.All()
			if len(tree) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("(empty configuration)"))
				return nil
			}

			out, err := yaml.Marshal(tree)
			if err != nil {
				return issue.NewErrorContext().
					WithOperation("render configuration").
					Wrap(err).
					BuildError()
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Look up one value by dotted key path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := deps.Config.Get(args[0], nil)
			if value == nil {
				return issue.NewErrorContext().
					WithOperation("look up config key").
					WithResource(args[0]).
					WithSuggestion("Run 'wpmoo config show' to see the available keys").
					Wrap(fmt.Errorf("key not found")).
					BuildError()
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", value)
			return nil
		},
	})

	return cmd
}
