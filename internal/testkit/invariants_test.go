package testkit_test

import (
	"testing"

	"myst/internal/container"
	"myst/internal/scope"
	"myst/internal/testkit"
	"myst/internal/value"
)

func TestCheckAncestorInvariants_NoDuplicates(t *testing.T) {
	base := container.NewType("Base", nil)
	shared := container.NewModule("Shared")
	base.Include(shared)

	derived := container.NewType("Derived", base)
	derived.Include(shared) // same module reachable via two paths

	if err := testkit.CheckAncestorInvariants(derived, false); err != nil {
		t.Fatalf("unexpected ancestor invariant violation: %v", err)
	}
}

func TestCheckScopeInvariants_OuterAssignmentMutatesOuter(t *testing.T) {
	outer := scope.New(scope.KindRoot, nil)
	inner := scope.New(scope.KindBlock, outer)
	outer.Define("x", value.Integer(1))

	err := testkit.CheckScopeInvariants(outer, inner, "x", func() {
		inner.Assign("x", value.Integer(2))
	}, value.Integer(2))
	if err != nil {
		t.Fatalf("unexpected scope invariant violation: %v", err)
	}
}

func TestCheckScopeInvariants_NewNameBindsLocally(t *testing.T) {
	outer := scope.New(scope.KindRoot, nil)
	inner := scope.New(scope.KindBlock, outer)

	err := testkit.CheckScopeInvariants(outer, inner, "y", func() {
		inner.Define("y", value.Integer(5))
	}, value.Integer(5))
	if err != nil {
		t.Fatalf("unexpected scope invariant violation: %v", err)
	}
}

func TestCheckMapInsertionOrder(t *testing.T) {
	m := value.NewMap()
	m.Set(value.String("a"), value.Integer(1))
	m.Set(value.String("b"), value.Integer(2))
	m.Set(value.String("c"), value.Integer(3))

	err := testkit.CheckMapInsertionOrder(m, []value.Value{value.String("a"), value.String("b"), value.String("c")})
	if err != nil {
		t.Fatalf("unexpected insertion-order violation: %v", err)
	}
}

func TestCheckTruthyInvariant(t *testing.T) {
	cases := []value.Value{value.Nilv, value.Boolean(false), value.Boolean(true), value.Integer(0), value.String("")}
	for _, v := range cases {
		if err := testkit.CheckTruthyInvariant(v); err != nil {
			t.Fatalf("truthy invariant violated for %s: %v", v.TypeName(), err)
		}
	}
}
