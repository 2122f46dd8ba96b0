package container

import (
	"fmt"

	"myst/internal/scope"
	"myst/internal/value"
)

// Type is a class: name, static scope, instance scope, optional supertype,
// and ordered lists of included and extended modules (spec.md §4.2).
type Type struct {
	Name          string
	StaticScope   *scope.Scope
	InstanceScope *scope.Scope
	Super         *Type
	// Included and Extended are stored most-recent-first: include/extend
	// prepend, so the latest inclusion is consulted first during dispatch.
	Included []*Module
	Extended []*Module

	ancestorsCache         []Ancestor
	extendedAncestorsCache []Ancestor
	ancestorsDirty         bool
}

// Ancestor is one entry of a resolved ancestor list: either a Module or a
// Type (a Type only ever appears for the chain's own supertype).
type Ancestor struct {
	Module *Module
	Type   *Type
}

// Scope returns the binding scope an Ancestor contributes to normal
// (instance) dispatch: a Module's own scope, or a Type's instance scope.
func (a Ancestor) Scope() *scope.Scope {
	return a.ScopeFor(false)
}

// ScopeFor returns the binding scope an Ancestor contributes, selecting a
// Type ancestor's static scope when walking an extended-ancestor chain
// (spec.md §4.4: dispatch on a Type uses its extended-ancestor list, whose
// entries contribute static scopes, not instance scopes). A Module
// contributes the same scope either way.
func (a Ancestor) ScopeFor(extended bool) *scope.Scope {
	if a.Module != nil {
		return a.Module.Scope
	}
	if extended {
		return a.Type.StaticScope
	}
	return a.Type.InstanceScope
}

// NewType constructs a Type with fresh static and instance scopes. Neither
// scope is parented to super's: supertype traversal is handled entirely by
// Ancestors/ExtendedAncestors (and dispatch/chain.go's walk over them), which
// places included/extended modules before the supertype chain per spec.md
// §4.2/§4.4's MRO. Parenting these scopes to super's directly would let a
// single Scope.Get call on this type's own scope silently walk past the
// supertype before the module-ancestor entries are ever consulted.
func NewType(name string, super *Type) *Type {
	t := &Type{
		Name:           name,
		StaticScope:    scope.New(scope.KindBlock, nil),
		InstanceScope:  scope.New(scope.KindBlock, nil),
		Super:          super,
		ancestorsDirty: true,
	}
	return t
}

func (*Type) Kind() value.Kind     { return value.KindType }
func (t *Type) TypeName() string   { return "Type" }
func (t *Type) Truthy() bool       { return true }
func (t *Type) Ivars() value.Ivars { return t.StaticScope }
func (t *Type) Inspect() string    { return fmt.Sprintf("#<Type %s>", t.Name) }

// Include prepends a module to the included-modules list, per spec.md
// §4.2: "include prepends to the head ... so the most recent inclusion is
// first". Invalidates the cached ancestor list.
func (t *Type) Include(m *Module) {
	t.Included = append([]*Module{m}, t.Included...)
	t.invalidate()
}

// Extend prepends a module to the extended-modules list, used when
// dispatching on the type object itself rather than an instance.
func (t *Type) Extend(m *Module) {
	t.Extended = append([]*Module{m}, t.Extended...)
	t.invalidate()
}

func (t *Type) invalidate() {
	t.ancestorsDirty = true
	t.extendedAncestorsCache = nil
}

// Ancestors returns the deterministic, duplicate-free ancestor list used
// for instance method dispatch (spec.md §4.2). The result is cached and
// recomputed only after Include/Extend on this type itself (or an explicit
// Invalidate); mutating a supertype or an included module does not mark
// this type's cached list stale.
func (t *Type) Ancestors() []Ancestor {
	if t.ancestorsDirty || t.ancestorsCache == nil {
		t.ancestorsCache = resolveAncestors(t, false)
		t.ancestorsDirty = false
	}
	return t.ancestorsCache
}

// ExtendedAncestors returns the ancestor list used when dispatching on the
// Type object itself (static/class methods), substituting Extended for
// Included at each step (spec.md §4.2).
func (t *Type) ExtendedAncestors() []Ancestor {
	if t.extendedAncestorsCache == nil {
		t.extendedAncestorsCache = resolveAncestors(t, true)
	}
	return t.extendedAncestorsCache
}

// Invalidate forces recomputation of both ancestor lists on the next
// access. Call this on every type in a hierarchy after a supertype's
// include/extend lists change, since Type itself only auto-invalidates its
// own cache.
func (t *Type) Invalidate() {
	t.invalidate()
}

// resolveAncestors implements spec.md §4.2's algorithm: traverse the
// relevant mixin list (included, or extended when useExtended), adding each
// module and its own ancestors (recursively, skipping duplicates), then
// append the supertype and its ancestors (using the same useExtended
// selection recursively). Deduplication preserves first occurrence.
func resolveAncestors(t *Type, useExtended bool) []Ancestor {
	seen := make(map[any]bool)
	var out []Ancestor

	add := func(a Ancestor) {
		key := any(a.Module)
		if a.Type != nil {
			key = any(a.Type)
		}
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, a)
	}

	moduleSeen := make(map[*Module]bool)
	addModuleAndAncestors := func(m *Module) {
		add(Ancestor{Module: m})
		moduleSeen[m] = true
		for _, nested := range m.ancestors(moduleSeen) {
			add(Ancestor{Module: nested})
		}
	}

	mixins := t.Included
	if useExtended {
		mixins = t.Extended
	}
	for _, m := range mixins {
		addModuleAndAncestors(m)
	}

	if t.Super != nil {
		add(Ancestor{Type: t.Super})
		var superAncestors []Ancestor
		if useExtended {
			superAncestors = t.Super.ExtendedAncestors()
		} else {
			superAncestors = t.Super.Ancestors()
		}
		for _, a := range superAncestors {
			add(a)
		}
	}

	return out
}
