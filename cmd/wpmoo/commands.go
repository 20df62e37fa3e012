// SPDX-License-Identifier: MPL-2.0

package cmd

import "wpmoo-cli/internal/registry"

// appRegistry is the registration table for every command group. Adding a
// command means adding its constructor here; the registry decides at
// startup which groups the resolved context may see.
func appRegistry() *registry.Registry {
	r := registry.New()

	r.Add(registry.GroupCommon,
		func() registry.Command { return &infoCommand{} },
		func() registry.Command { return &initCommand{} },
		func() registry.Command { return &configCommand{} },
	)

	r.Add(registry.GroupFramework,
		func() registry.Command { return newScriptCommand("lint", "Check coding standards", "scripts.lint", "phpcs") },
		func() registry.Command { return newScriptCommand("fix", "Fix coding standard violations", "scripts.fix", "phpcbf") },
		func() registry.Command { return newScriptCommand("test", "Run the project test suite", "scripts.test", "phpunit") },
	)

	r.Add(registry.GroupPlugin,
		func() registry.Command { return newScriptCommand("pot", "Generate the translation catalog", "scripts.pot", "wp i18n make-pot .") },
	)

	return r
}
