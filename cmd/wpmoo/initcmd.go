// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"wpmoo-cli/internal/config"
	"wpmoo-cli/internal/issue"
	"wpmoo-cli/internal/registry"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// initCommand materializes a fresh project configuration file.
type initCommand struct{}

func (c *initCommand) Descriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "init",
		Description: "Create a fresh project configuration",
	}
}

func (c *initCommand) Cobra(deps *registry.Deps) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: c.Descriptor().Description,
		Long: `Writes a starter ` + config.LegacyFileName + ` into the current directory.

The file is a full overwrite target: rerunning init with --force replaces
it entirely rather than merging with existing content.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := filepath.Join(deps.WorkDir, config.LegacyFileName)

			if exists, _ := afero.Exists(deps.Fs, target); exists && !force {
				return issue.NewErrorContext().
					WithOperation("create project config").
					WithResource(target).
					WithSuggestion("Use --force to overwrite the existing file").
					Wrap(fmt.Errorf("config file already exists")).
					BuildError()
			}

			if err := config.Save(deps.Fs, deps.WorkDir, defaultProjectConfig(deps.WorkDir)); err != nil {
				return issue.NewErrorContext().
					WithOperation("create project config").
					WithResource(target).
					WithSuggestion("Check that the directory is writable").
					Wrap(err).
					BuildError()
			}

			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Created ")+CmdStyle.Render(target))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}

// defaultProjectConfig is the starter tree written by init. The scripts
// section names the external binaries the quality commands shell out to.
func defaultProjectConfig(dir string) config.Tree {
	return config.Tree{
		"project": map[string]any{
			"name": filepath.Base(dir),
		},
		"scripts": map[string]any{
			"lint": "phpcs",
			"fix":  "phpcbf",
			"test": "phpunit",
			"pot":  "wp i18n make-pot .",
		},
	}
}
