// Package scope implements lexically nested name-to-value bindings with
// closure capture (spec.md §4.1, component B).
package scope

import "myst/internal/value"

// Kind distinguishes what kind of lexical unit a Scope was pushed for.
// Unlike the teacher's compile-time symbols.ScopeKind, these are runtime
// frames, not declaration sites, but the enumeration shape is the same.
type Kind uint8

const (
	KindInvalid Kind = iota
	// KindRoot is the single kernel scope present for the lifetime of the
	// interpreter.
	KindRoot
	// KindCall is a fresh call frame with no lexical parent.
	KindCall
	// KindClosure is a call frame whose parent is the scope captured at
	// Functor-creation time.
	KindClosure
	// KindBlock is a nested lexical unit (if/while/block bodies) whose
	// parent is always the enclosing scope.
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindCall:
		return "call"
	case KindClosure:
		return "closure"
	case KindBlock:
		return "block"
	default:
		return "invalid"
	}
}

// Scope is an ordered mapping from identifier strings to values with an
// optional parent pointer (spec.md §4.1). It also satisfies value.Ivars, so
// it doubles as the per-object binding table for Instance, Module, Type,
// and Functor values that need parent-chained lookup (Instance ivars fall
// back to the owning Type's instance scope).
type Scope struct {
	kind   Kind
	parent *Scope
	names  []string
	vals   map[string]value.Value
}

// New constructs a scope of the given kind with the given parent (nil for
// a scope with no lexical parent).
func New(kind Kind, parent *Scope) *Scope {
	return &Scope{kind: kind, parent: parent, vals: make(map[string]value.Value)}
}

// Kind reports the scope's kind.
func (s *Scope) Kind() Kind { return s.kind }

// Parent returns the lexical parent, or nil at the root or at a non-closure
// call boundary.
func (s *Scope) Parent() *Scope { return s.parent }

// DefinesLocally reports whether name is bound directly in this scope,
// without consulting the parent chain.
func (s *Scope) DefinesLocally(name string) bool {
	_, ok := s.vals[name]
	return ok
}

// GetLocal returns the value bound directly in this scope, without
// consulting the parent chain. Used when reopening a method/module/type
// definition, where accidentally finding an ancestor's binding (via the
// full Lookup chain) would wrongly append a clause to a supertype's Functor
// instead of defining a fresh override here.
func (s *Scope) GetLocal(name string) (value.Value, bool) {
	v, ok := s.vals[name]
	return v, ok
}

// Define binds name in this scope directly, shadowing any outer binding of
// the same name. Used for parameter binding and explicit local declaration.
func (s *Scope) Define(name string, v value.Value) {
	if _, exists := s.vals[name]; !exists {
		s.names = append(s.names, name)
	}
	s.vals[name] = v
}

// Lookup implements spec.md §4.1 "Read name": search scopes from innermost
// outward, returning the first binding found.
func (s *Scope) Lookup(name string) (value.Value, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vals[name]; ok {
			return v, true
		}
	}
	return value.Nilv, false
}

// Assign implements spec.md §4.1 "Assign name": walk innermost-outward; if
// any scope already binds name, mutate that binding in place. Otherwise
// bind name fresh in this (innermost) scope. This is what makes assignment
// to a name already visible in an enclosing scope update that enclosing
// binding rather than shadow it.
func (s *Scope) Assign(name string, v value.Value) {
	for cur := s; cur != nil; cur = cur.parent {
		if _, ok := cur.vals[name]; ok {
			cur.vals[name] = v
			return
		}
	}
	s.Define(name, v)
}

// Get satisfies value.Ivars for scopes used as per-object binding tables:
// it looks up name via the full parent chain, so an Instance's own scope
// naturally falls through to its Type's instance scope.
func (s *Scope) Get(name string) (value.Value, bool) {
	return s.Lookup(name)
}

// Set satisfies value.Ivars: it mutates the nearest existing binding, or
// defines one locally — the same semantics as Assign, reused here so ivar
// writes on Instance/Module/Type/Functor values behave identically to
// ordinary local-variable assignment.
func (s *Scope) Set(name string, v value.Value) {
	s.Assign(name, v)
}

// Names returns the names bound directly in this scope (not the parent
// chain) in first-definition order.
func (s *Scope) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
