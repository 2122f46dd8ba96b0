// Package testkit implements invariant-checking helpers for spec.md §8's
// universal properties, grounded on the teacher's internal/testkit (a
// handful of plain functions returning a descriptive error rather than
// taking a *testing.T, so one invariant check can be reused across many
// package test suites the same way CheckSpanInvariants is reused across
// the teacher's parser tests).
package testkit

import (
	"fmt"

	"myst/internal/container"
	"myst/internal/value"
)

// CheckAncestorInvariants verifies spec.md §8 property 5 for t: its
// resolved ancestor list (instance dispatch if extended is false, static
// dispatch if true) contains no duplicate (Module or Type) entry, in
// either sense of "duplicate" — the same Module pointer, or the same Type
// pointer, never appears twice.
func CheckAncestorInvariants(t *container.Type, extended bool) error {
	var list []container.Ancestor
	if extended {
		list = t.ExtendedAncestors()
	} else {
		list = t.Ancestors()
	}

	seenModules := make(map[*container.Module]bool, len(list))
	seenTypes := make(map[*container.Type]bool, len(list))
	for i, a := range list {
		if a.Module != nil {
			if seenModules[a.Module] {
				return fmt.Errorf("ancestor %d: module %q repeated in %s's ancestor list", i, a.Module.Name, t.Name)
			}
			seenModules[a.Module] = true
		}
		if a.Type != nil {
			if seenTypes[a.Type] {
				return fmt.Errorf("ancestor %d: supertype %q repeated in %s's ancestor list", i, a.Type.Name, t.Name)
			}
			seenTypes[a.Type] = true
		}
	}
	return nil
}

// CheckScopeInvariants verifies spec.md §8 property 9's two halves for one
// assignment scenario: assigning name in inner (a child scope of outer)
// either mutates outer's existing binding (when outer already defines
// name) or creates a fresh binding local to inner (when it doesn't),
// leaving outer untouched either way. assign should perform exactly one
// assignment of name to a value and is supplied by the caller so this
// helper stays agnostic to the assignment implementation (plain Define vs.
// an Assign AST node).
func CheckScopeInvariants(outer, inner value.Ivars, name string, assign func(), after value.Value) error {
	_, outerHadBefore := outer.Get(name)
	assign()

	outerVal, outerHasAfter := outer.Get(name)
	innerVal, innerHasAfter := inner.Get(name)

	if outerHadBefore {
		if !outerHasAfter || outerVal != after {
			return fmt.Errorf("expected assignment to mutate outer binding %q to %v, got %v (present=%v)", name, after, outerVal, outerHasAfter)
		}
		return nil
	}
	if !innerHasAfter || innerVal != after {
		return fmt.Errorf("expected assignment to bind %q locally to %v, got %v (present=%v)", name, after, innerVal, innerHasAfter)
	}
	return nil
}

// CheckMapInsertionOrder verifies spec.md §8 property 6: m.Keys() lists
// exactly wantKeys, in that order, after a sequence of []= operations
// creating fresh keys in that order.
func CheckMapInsertionOrder(m *value.Map, wantKeys []value.Value) error {
	got := m.Keys()
	if len(got) != len(wantKeys) {
		return fmt.Errorf("expected %d keys, got %d", len(wantKeys), len(got))
	}
	for i, want := range wantKeys {
		if got[i] != want {
			return fmt.Errorf("key %d: expected %v, got %v", i, want, got[i])
		}
	}
	return nil
}

// CheckTruthyInvariant verifies spec.md §8 property 3 for one value: v's
// Truthy() is false iff v is Nil or Boolean(false).
func CheckTruthyInvariant(v value.Value) error {
	_, isNil := v.(value.NilType)
	isFalseBoolean := v == value.Value(value.Boolean(false))
	wantFalsy := isNil || isFalseBoolean
	if v.Truthy() == wantFalsy {
		return fmt.Errorf("truthy invariant violated for %s: Truthy()=%v, wantFalsy=%v", v.TypeName(), v.Truthy(), wantFalsy)
	}
	return nil
}
