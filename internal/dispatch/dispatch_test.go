package dispatch

import (
	"testing"

	"myst/internal/container"
	"myst/internal/functor"
	"myst/internal/methodcache"
	"myst/internal/value"
)

func nativeClauseReturning(v value.Value) *functor.NativeClause {
	return &functor.NativeClause{
		MinArgs: 0, MaxArgs: -1,
		Fn: func(recv value.Value, args []value.Value, block *functor.Functor) (value.Value, error) {
			return v, nil
		},
	}
}

func TestInvokeFindsModuleMethodOnInstance(t *testing.T) {
	reg := NewRegistry()

	m := container.NewModule("Greetable")
	f := functor.New("hello", m.Scope, false)
	f.AddClause(nativeClauseReturning(value.String("hi")))
	m.Scope.Define("hello", f)

	typ := container.NewType("Person", nil)
	typ.Include(m)
	inst := container.NewInstance(typ)

	got, err := reg.Invoke(nil, inst, "hello", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != value.Value(value.String("hi")) {
		t.Fatalf("expected hi, got %v", got)
	}
}

func TestInvokeNoSuchMethod(t *testing.T) {
	reg := NewRegistry()
	typ := container.NewType("Empty", nil)
	inst := container.NewInstance(typ)

	_, err := reg.Invoke(nil, inst, "nope", nil, nil)
	if err == nil {
		t.Fatalf("expected no-such-method error")
	}
}

func TestInvokeSupertypeMethodReachable(t *testing.T) {
	reg := NewRegistry()
	base := container.NewType("Base", nil)
	f := functor.New("greet", base.InstanceScope, false)
	f.AddClause(nativeClauseReturning(value.String("base-greet")))
	base.InstanceScope.Define("greet", f)

	derived := container.NewType("Derived", base)
	inst := container.NewInstance(derived)

	got, err := reg.Invoke(nil, inst, "greet", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != value.Value(value.String("base-greet")) {
		t.Fatalf("expected base-greet, got %v", got)
	}
}

func TestInvokeStaticMethodViaExtend(t *testing.T) {
	reg := NewRegistry()
	staticMixin := container.NewModule("Factory")
	f := functor.New("make", staticMixin.Scope, false)
	f.AddClause(nativeClauseReturning(value.String("made")))
	staticMixin.Scope.Define("make", f)

	typ := container.NewType("Widget", nil)
	typ.Extend(staticMixin)

	got, err := reg.Invoke(nil, typ, "make", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != value.Value(value.String("made")) {
		t.Fatalf("expected made, got %v", got)
	}
}

func TestInvokePrimitiveUsesRegisteredBuiltinType(t *testing.T) {
	reg := NewRegistry()
	intType := container.NewType("Integer", nil)
	f := functor.New("double", intType.InstanceScope, false)
	f.AddClause(&functor.NativeClause{
		MinArgs: 0, MaxArgs: 0,
		Fn: func(recv value.Value, args []value.Value, block *functor.Functor) (value.Value, error) {
			return recv.(value.Integer) * 2, nil
		},
	})
	intType.InstanceScope.Define("double", f)
	reg.Register(value.KindInteger, intType)

	got, err := reg.Invoke(nil, value.Integer(21), "double", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != value.Value(value.Integer(42)) {
		t.Fatalf("expected 42, got %v", got)
	}
}

func TestInvokeArityMismatch(t *testing.T) {
	reg := NewRegistry()
	typ := container.NewType("T", nil)
	f := functor.New("needs_one", typ.InstanceScope, false)
	f.AddClause(&functor.NativeClause{MinArgs: 1, MaxArgs: 1, Fn: func(value.Value, []value.Value, *functor.Functor) (value.Value, error) {
		return value.Nilv, nil
	}})
	typ.InstanceScope.Define("needs_one", f)
	inst := container.NewInstance(typ)

	if _, err := reg.Invoke(nil, inst, "needs_one", nil, nil); err == nil {
		t.Fatalf("expected arity mismatch error")
	}
}

func TestLookupPopulatesMethodCacheAndInvalidateClearsIt(t *testing.T) {
	reg := NewRegistry()
	reg.MethodCache = methodcache.New(nil)

	base := container.NewType("Base", nil)
	f := functor.New("greet", base.InstanceScope, false)
	f.AddClause(nativeClauseReturning(value.String("hi")))
	base.InstanceScope.Define("greet", f)
	inst := container.NewInstance(base)

	if _, err := reg.Lookup(inst, "greet"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.MethodCache.Len() != 1 {
		t.Fatalf("expected Lookup to populate the cache, got %d entries", reg.MethodCache.Len())
	}

	// Redefine greet with a second clause entirely: Lookup must still
	// resolve to the live Functor (same pointer, new clauses), not a stale
	// cached snapshot, since a cache stores the Functor, not a clause.
	f.AddClause(nativeClauseReturning(value.String("hi-again")))
	got, err := reg.Lookup(inst, "greet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != f {
		t.Fatalf("expected cached lookup to still return the same Functor")
	}

	reg.InvalidateMethodCache()
	if reg.MethodCache.Len() != 0 {
		t.Fatalf("expected InvalidateMethodCache to clear entries, got %d", reg.MethodCache.Len())
	}

	if _, err := reg.Lookup(inst, "greet"); err != nil {
		t.Fatalf("unexpected error after invalidate: %v", err)
	}
	if reg.MethodCache.Len() != 1 {
		t.Fatalf("expected Lookup to repopulate the cache after invalidate, got %d", reg.MethodCache.Len())
	}
}
