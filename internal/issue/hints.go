// SPDX-License-Identifier: MPL-2.0

package issue

import "github.com/charmbracelet/glamour"

// render is swappable in tests to avoid terminal-dependent output.
var render = glamour.Render

// UnknownProjectHint is shown when classification resolved to unknown and
// the user asked about their project context.
const UnknownProjectHint = `
# No wpmoo project detected

The current directory does not look like the wpmoo framework, a plugin,
or a theme. Only the common commands are available here.

## Things you can try

- Move into a project directory that contains a manifest:
~~~
$ cd /path/to/your/plugin
~~~

- Declare the project in its manifest so classification does not rely on
  scanning source files:
~~~json
{"type": "wordpress-plugin", "dependencies": {"wpmoo/wpmoo": "^2.0"}}
~~~

- Create a fresh project configuration:
~~~
$ wpmoo init
~~~`

// NoConfigHint is shown when no configuration source was found for a
// project.
const NoConfigHint = `
# No configuration found

No wpmoo-config.yml, wpmoo-config/ or .wpmoo/ sources were found between
here and the filesystem root. All lookups will return defaults.

## Things you can try

- Materialize a starter configuration in the current directory:
~~~
$ wpmoo init
~~~`

// RenderHint renders a markdown hint card for terminal display. The raw
// markdown is returned when rendering fails, so a hint is never lost.
func RenderHint(markdown string) string {
	out, err := render(markdown, "dark")
	if err != nil {
		return markdown
	}
	return out
}
