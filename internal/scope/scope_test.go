package scope

import (
	"testing"

	"myst/internal/value"
)

func TestAssignMutatesOuterBinding(t *testing.T) {
	outer := New(KindRoot, nil)
	outer.Define("x", value.Integer(1))

	inner := New(KindBlock, outer)
	// Not defined locally; Assign must walk out to the existing binding.
	inner.Assign("x", value.Integer(2))

	if inner.DefinesLocally("x") {
		t.Fatalf("assignment to an existing outer name must not shadow locally")
	}
	got, ok := outer.Lookup("x")
	if !ok || got != value.Value(value.Integer(2)) {
		t.Fatalf("expected outer x to be mutated to 2, got %v ok=%v", got, ok)
	}
}

func TestAssignDefinesLocallyWhenNameIsNew(t *testing.T) {
	outer := New(KindRoot, nil)
	inner := New(KindBlock, outer)

	inner.Assign("y", value.Integer(5))

	if !inner.DefinesLocally("y") {
		t.Fatalf("expected new name to be bound in the innermost scope")
	}
	if _, ok := outer.Lookup("y"); ok {
		t.Fatalf("outer scope must not see a name defined in a child scope")
	}
}

func TestLookupSearchesInnermostOutward(t *testing.T) {
	outer := New(KindRoot, nil)
	outer.Define("x", value.Integer(1))
	inner := New(KindBlock, outer)
	inner.Define("x", value.Integer(2))

	got, ok := inner.Lookup("x")
	if !ok || got != value.Value(value.Integer(2)) {
		t.Fatalf("expected innermost binding to win, got %v", got)
	}
	got, ok = outer.Lookup("x")
	if !ok || got != value.Value(value.Integer(1)) {
		t.Fatalf("expected outer binding untouched, got %v", got)
	}
}

func TestLookupMissingReturnsFalse(t *testing.T) {
	s := New(KindRoot, nil)
	if _, ok := s.Lookup("nope"); ok {
		t.Fatalf("expected missing name to report ok=false")
	}
}

func TestTableFreshFrameHasNoParent(t *testing.T) {
	table := NewTable()
	table.Root().Define("g", value.Integer(9))

	fresh := table.PushFresh(KindCall)
	if fresh.Parent() != nil {
		t.Fatalf("PushFresh scope must have no lexical parent")
	}
	if _, ok := fresh.Lookup("g"); ok {
		t.Fatalf("a fresh call frame must not see the root's locals")
	}
	table.Pop()
}

func TestTableClosureFrameCapturesTop(t *testing.T) {
	table := NewTable()
	table.Root().Define("g", value.Integer(9))

	closure := table.PushClosure(KindClosure)
	if got, ok := closure.Lookup("g"); !ok || got != value.Value(value.Integer(9)) {
		t.Fatalf("closure scope should see enclosing bindings, got %v ok=%v", got, ok)
	}
	table.Pop()
}

func TestPopRootPanics(t *testing.T) {
	table := NewTable()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected popping the root scope to panic")
		}
	}()
	table.Pop()
}
