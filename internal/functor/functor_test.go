package functor

import (
	"testing"

	"myst/internal/ast"
	"myst/internal/scope"
	"myst/internal/value"
)

func TestSelectClausePrefersDefinitionOrderAmongEqualArity(t *testing.T) {
	f := New("greet", nil, false)
	first := &UserClause{Params: ast.ParamList{SplatIndex: -1}}
	second := &UserClause{Params: ast.ParamList{SplatIndex: -1}}
	f.AddClause(first)
	f.AddClause(second)

	got, ok := f.SelectClause(0)
	if !ok || got != Clause(first) {
		t.Fatalf("expected first-defined zero-arity clause to win ties")
	}
}

func TestSelectClauseBySplatArity(t *testing.T) {
	f := New("variadic", nil, false)
	c := &UserClause{Params: ast.ParamList{
		Params:     []ast.Param{{Name: "head"}, {Name: "rest"}},
		SplatIndex: 1,
	}}
	f.AddClause(c)

	if _, ok := f.SelectClause(0); ok {
		t.Fatalf("0 args should not satisfy a clause requiring >=1 (splat covers the rest)")
	}
	if _, ok := f.SelectClause(1); !ok {
		t.Fatalf("1 arg should satisfy head+empty-splat")
	}
	if _, ok := f.SelectClause(5); !ok {
		t.Fatalf("5 args should satisfy head+splat")
	}
}

func TestNewFrameClosureVsFresh(t *testing.T) {
	outer := scope.New(scope.KindRoot, nil)
	outer.Define("x", value.Integer(1))

	closed := New("c", outer, true)
	frame := closed.NewFrame()
	if frame.Parent() != outer {
		t.Fatalf("closure functor frame should parent to lexical scope")
	}

	fresh := New("f", outer, false)
	frame2 := fresh.NewFrame()
	if frame2.Parent() != nil {
		t.Fatalf("non-closure functor frame should have no parent")
	}
}

func TestResolveSelfPrefersClosedSelf(t *testing.T) {
	f := New("m", nil, false)
	f.HasClosedSelf = true
	f.ClosedSelf = value.String("captured")

	got := f.ResolveSelf(value.String("call-site"))
	if got != value.Value(value.String("captured")) {
		t.Fatalf("expected closed self to win, got %v", got)
	}

	f2 := New("m2", nil, false)
	got2 := f2.ResolveSelf(value.String("call-site"))
	if got2 != value.Value(value.String("call-site")) {
		t.Fatalf("expected call-site receiver when no closed self, got %v", got2)
	}
}

func TestBindArgsSplatCollectsTail(t *testing.T) {
	frame := scope.New(scope.KindCall, nil)
	clause := &UserClause{Params: ast.ParamList{
		Params:     []ast.Param{{Name: "head"}, {Name: "rest"}},
		SplatIndex: 1,
	}}
	args := []value.Value{value.Integer(1), value.Integer(2), value.Integer(3)}
	if err := BindArgs(frame, clause, args); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	head, _ := frame.Lookup("head")
	if head != value.Value(value.Integer(1)) {
		t.Fatalf("expected head=1, got %v", head)
	}
	rest, _ := frame.Lookup("rest")
	list, ok := rest.(*value.List)
	if !ok || list.Len() != 2 {
		t.Fatalf("expected rest to be a 2-element list, got %v", rest)
	}
}

func TestBindArgsArityMismatch(t *testing.T) {
	frame := scope.New(scope.KindCall, nil)
	clause := &UserClause{Params: ast.ParamList{
		Params:     []ast.Param{{Name: "a"}, {Name: "b"}},
		SplatIndex: -1,
	}}
	if err := BindArgs(frame, clause, []value.Value{value.Integer(1)}); err == nil {
		t.Fatalf("expected arity mismatch error")
	}
}
