// Package container implements modules, classes (with supertype and
// included/extended mixins), and instances, together with the ancestor
// (method resolution order) algorithm used for dispatch (spec.md §4.2,
// component C).
package container

import (
	"fmt"

	"myst/internal/scope"
	"myst/internal/value"
)

// Module is a named namespace with a binding scope. Modules compose into a
// Type's dispatch chain via include/extend rather than being instantiated
// themselves.
type Module struct {
	Name  string
	Scope *scope.Scope
	// Included holds modules this module itself includes, most-recent
	// first, so a module's own ancestor list can recurse the same way a
	// Type's does (spec.md §4.2: "add M, then recursively append M's
	// ancestors").
	Included []*Module
}

// NewModule constructs an empty module with a fresh, parentless block-kind
// scope.
func NewModule(name string) *Module {
	return &Module{Name: name, Scope: scope.New(scope.KindBlock, nil)}
}

// Include prepends a nested module to this module's own inclusion list.
func (m *Module) Include(other *Module) {
	m.Included = append([]*Module{other}, m.Included...)
}

// ancestors returns this module's own ancestor list: itself is not
// included (the caller adds M before recursing), only M's transitively
// included modules, deduplicated.
func (m *Module) ancestors(seen map[*Module]bool) []*Module {
	var out []*Module
	for _, inc := range m.Included {
		if seen[inc] {
			continue
		}
		seen[inc] = true
		out = append(out, inc)
		out = append(out, inc.ancestors(seen)...)
	}
	return out
}

func (*Module) Kind() value.Kind   { return value.KindModule }
func (m *Module) TypeName() string { return "Module" }
func (m *Module) Truthy() bool     { return true }
func (m *Module) Ivars() value.Ivars { return m.Scope }
func (m *Module) Inspect() string  { return fmt.Sprintf("#<Module %s>", m.Name) }
