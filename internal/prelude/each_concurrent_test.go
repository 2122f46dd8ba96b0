package prelude

import (
	"testing"

	"myst/internal/ast"
	"myst/internal/interp"
	"myst/internal/value"
)

// run mirrors internal/interp's own test helper: build a Program directly
// from AST nodes rather than going through internal/parse, since no parser
// is wired up yet.
func run(t *testing.T, stmts ...ast.Node) value.Value {
	t.Helper()
	it := interp.New()
	v, err := it.Run(&ast.Program{Statements: stmts})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}

func listLit(nums ...int64) *ast.ListLit {
	elems := make([]ast.Node, len(nums))
	for i, n := range nums {
		elems[i] = &ast.IntegerLit{Value: n}
	}
	return &ast.ListLit{Elements: elems}
}

// TestListEachConcurrentPreservesOrderWithoutDigestParam exercises the
// arity-probe path: a one-param block never receives the precomputed
// digest, so it runs exactly as it would under each.
func TestListEachConcurrentPreservesOrderWithoutDigestParam(t *testing.T) {
	got := run(t,
		&ast.Assign{Name: "sum", Value: &ast.IntegerLit{Value: 0}},
		&ast.MethodCall{
			Receiver: listLit(1, 2, 3, 4, 5),
			Name:     "each_concurrent",
			Block: &ast.BlockLit{
				Params: ast.ParamList{Params: []ast.Param{{Name: "x"}}, SplatIndex: -1},
				Body: []ast.Node{
					&ast.Assign{
						Name: "sum",
						Value: &ast.BinaryOp{
							Op:    "+",
							Left:  &ast.Identifier{Name: "sum"},
							Right: &ast.Identifier{Name: "x"},
						},
					},
				},
			},
		},
		&ast.Identifier{Name: "sum"},
	)
	if got != value.Value(value.Integer(15)) {
		t.Fatalf("expected sum 15, got %v", got)
	}
}

// TestListEachConcurrentPassesDigestWhenBlockAcceptsIt exercises the other
// arm of the arity probe: a two-param block receives the element and its
// precomputed value.Inspect digest as a string.
func TestListEachConcurrentPassesDigestWhenBlockAcceptsIt(t *testing.T) {
	got := run(t,
		&ast.Assign{Name: "last_digest", Value: &ast.NilLit{}},
		&ast.MethodCall{
			Receiver: listLit(7),
			Name:     "each_concurrent",
			Block: &ast.BlockLit{
				Params: ast.ParamList{
					Params:     []ast.Param{{Name: "x"}, {Name: "digest"}},
					SplatIndex: -1,
				},
				Body: []ast.Node{
					&ast.Assign{Name: "last_digest", Value: &ast.Identifier{Name: "digest"}},
				},
			},
		},
		&ast.Identifier{Name: "last_digest"},
	)
	if got != value.Value(value.String("7")) {
		t.Fatalf("expected digest \"7\", got %v (%T)", got, got)
	}
}

// TestMapEachConcurrentPreservesKeyOrder mirrors the list case for Map,
// confirming block invocation stays ordered even though the digests are
// precomputed concurrently.
func TestMapEachConcurrentPreservesKeyOrder(t *testing.T) {
	got := run(t,
		&ast.Assign{Name: "sum", Value: &ast.IntegerLit{Value: 0}},
		&ast.MethodCall{
			Receiver: &ast.MapLit{
				Keys: []ast.Node{&ast.StringLit{Value: "a"}, &ast.StringLit{Value: "b"}},
				Vals: []ast.Node{&ast.IntegerLit{Value: 10}, &ast.IntegerLit{Value: 20}},
			},
			Name: "each_concurrent",
			Block: &ast.BlockLit{
				Params: ast.ParamList{Params: []ast.Param{{Name: "k"}, {Name: "v"}}, SplatIndex: -1},
				Body: []ast.Node{
					&ast.Assign{
						Name: "sum",
						Value: &ast.BinaryOp{
							Op:    "+",
							Left:  &ast.Identifier{Name: "sum"},
							Right: &ast.Identifier{Name: "v"},
						},
					},
				},
			},
		},
		&ast.Identifier{Name: "sum"},
	)
	if got != value.Value(value.Integer(30)) {
		t.Fatalf("expected sum 30, got %v", got)
	}
}
