// SPDX-License-Identifier: MPL-2.0

// Package registry decides which command groups a classified project may
// see and builds the CLI command set from per-group registration tables.
// Commands are registered at startup from compile-time tables rather than
// discovered by scanning directories, so the visible set is fixed once
// construction finishes.
package registry

import (
	"sort"

	"wpmoo-cli/internal/config"
	"wpmoo-cli/internal/project"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Group names one of the fixed command groups.
type Group string

const (
	// GroupCommon is available in every context, including unknown.
	GroupCommon Group = "common"
	// GroupFramework is available inside the framework and projects built
	// on it.
	GroupFramework Group = "framework"
	// GroupPlugin is available inside plugins and themes.
	GroupPlugin Group = "plugin"
)

// groupOrder fixes the build order of groups so downstream listing output
// is stable.
var groupOrder = []Group{GroupCommon, GroupFramework, GroupPlugin}

// EligibleGroups returns the command groups visible for a context. The
// common group is always included, so even an unknown context yields a
// usable CLI.
func EligibleGroups(ctx project.Context) []Group {
	groups := []Group{GroupCommon}
	if ctx.IsFrameworkBased() {
		groups = append(groups, GroupFramework)
	}
	if ctx.IsExtension() {
		groups = append(groups, GroupPlugin)
	}
	return groups
}

// Descriptor is the registration metadata for one command.
type Descriptor struct {
	Group       Group
	Name        string
	Description string
}

// ID returns the fully qualified command identifier, derived from the
// group and command name so reorganizing a group is reflected automatically.
func (d Descriptor) ID() string {
	return string(d.Group) + "/" + d.Name
}

// Deps carries the resolved project state injected into every command at
// build time. The config store plays no role in registration itself.
type Deps struct {
	Fs      afero.Fs
	WorkDir string
	Context project.Context
	Config  *config.Store
}

// Command is the capability every registrable unit must satisfy.
type Command interface {
	Descriptor() Descriptor
	Cobra(deps *Deps) *cobra.Command
}

// Factory constructs one command. A factory returning nil fails the
// capability check and is silently skipped, which keeps non-command helpers
// out of the registry.
type Factory func() Command

// Registry holds the per-group registration tables.
type Registry struct {
	tables map[Group][]Factory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{tables: make(map[Group][]Factory)}
}

// Add registers factories under a group.
func (r *Registry) Add(group Group, factories ...Factory) {
	r.tables[group] = append(r.tables[group], factories...)
}

// Registered is one built command together with its descriptor.
type Registered struct {
	Descriptor Descriptor
	Cobra      *cobra.Command
}

// Build instantiates every factory in every group eligible for the context
// in deps, skips units that fail the capability check, and returns the
// commands sorted by name within each group. The result is fixed: no
// dynamic add/remove happens afterward.
func (r *Registry) Build(deps *Deps) []Registered {
	eligible := make(map[Group]bool)
	for _, g := range EligibleGroups(deps.Context) {
		eligible[g] = true
	}

	var out []Registered
	for _, group := range groupOrder {
		if !eligible[group] {
			continue
		}

		var built []Registered
		for _, factory := range r.tables[group] {
			cmd := factory()
			if cmd == nil {
				continue
			}
			cc := cmd.Cobra(deps)
			if cc == nil {
				continue
			}

			desc := cmd.Descriptor()
			desc.Group = group
			built = append(built, Registered{Descriptor: desc, Cobra: cc})
		}

		sort.Slice(built, func(i, j int) bool {
			return built[i].Descriptor.Name < built[j].Descriptor.Name
		})
		out = append(out, built...)
	}

	return out
}

// Attach builds the registry against deps and adds every resulting command
// to the cobra root. It returns the descriptors in registration order.
func (r *Registry) Attach(root *cobra.Command, deps *Deps) []Descriptor {
	built := r.Build(deps)

	descriptors := make([]Descriptor, 0, len(built))
	for _, reg := range built {
		root.AddCommand(reg.Cobra)
		descriptors = append(descriptors, reg.Descriptor)
	}
	return descriptors
}
