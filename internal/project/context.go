// SPDX-License-Identifier: MPL-2.0

package project

// Context classifies the kind of project the CLI was invoked inside. The
// label gates which command groups the registry exposes.
type Context string

const (
	// ContextCLITool is the wpmoo CLI's own source checkout.
	ContextCLITool Context = "cli-tool"
	// ContextFramework is a checkout of the wpmoo framework itself.
	ContextFramework Context = "framework"
	// ContextPlugin is a WordPress plugin built on the framework.
	ContextPlugin Context = "plugin"
	// ContextTheme is a WordPress theme built on the framework.
	ContextTheme Context = "theme"
	// ContextUnknown is any directory without a recognizable project signal.
	ContextUnknown Context = "unknown"
)

// String returns the context label.
func (c Context) String() string {
	return string(c)
}

// IsFrameworkBased reports whether the context is the framework itself or a
// project built on top of it.
func (c Context) IsFrameworkBased() bool {
	switch c {
	case ContextFramework, ContextPlugin, ContextTheme:
		return true
	default:
		return false
	}
}

// IsExtension reports whether the context is a plugin or theme.
func (c Context) IsExtension() bool {
	return c == ContextPlugin || c == ContextTheme
}
