package interp

import (
	"myst/internal/ast"
	"myst/internal/functor"
	"myst/internal/value"
)

// VisitMethodCall implements spec.md §6's call form. An implicit-self call
// (Receiver == nil) first tries an ordinary scope lookup for a Functor bound
// to Name (a local/free function, or a sibling method referenced bare from
// within a method body); only if that fails does it dispatch through the
// ancestor chain of the current self, treating `name(args)` the same as
// `self.name(args)`.
func (it *Interpreter) VisitMethodCall(n *ast.MethodCall) (ast.Result, error) {
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		res, err := a.Accept(it)
		if err != nil {
			return nil, err
		}
		args[i] = res.(value.Value)
	}

	var block *functor.Functor
	if n.Block != nil {
		block = functor.New("<block>", it.Table.Top(), true)
		block.ClosedSelf, block.HasClosedSelf = it.self(), true
		block.AddClause(&functor.UserClause{Params: n.Block.Params, Body: n.Block.Body})
	}

	if n.Receiver == nil {
		if v, ok := it.Table.Top().Lookup(n.Name); ok {
			if fn, ok := v.(*functor.Functor); ok {
				self := it.self()
				return it.dispatchSpan(n.Name, func() (ast.Result, error) {
					return it.Reg.InvokeFunctor(it, self, fn, args, block)
				})
			}
		}
		self := it.self()
		return it.dispatchSpan(n.Name, func() (ast.Result, error) {
			return it.Reg.Invoke(it, self, n.Name, args, block)
		})
	}

	recv, err := n.Receiver.Accept(it)
	if err != nil {
		return nil, err
	}
	return it.dispatchSpan(n.Name, func() (ast.Result, error) {
		return it.Reg.Invoke(it, recv.(value.Value), n.Name, args, block)
	})
}

// VisitBlockLit is only reached when a block literal appears somewhere
// other than a call's trailing block (e.g. assigned to a variable); it
// produces a closure-capturing Functor exactly like the trailing-block path
// in VisitMethodCall.
func (it *Interpreter) VisitBlockLit(n *ast.BlockLit) (ast.Result, error) {
	f := functor.New("<block>", it.Table.Top(), true)
	f.ClosedSelf, f.HasClosedSelf = it.self(), true
	f.AddClause(&functor.UserClause{Params: n.Params, Body: n.Body})
	return f, nil
}

// VisitMethodDef defines a method in the current definition scope (the
// kernel root scope at top level, or the enclosing ModuleDecl/TypeDecl's
// scope — spec.md §4.3: "Adding a clause appends to the clauses list").
func (it *Interpreter) VisitMethodDef(n *ast.MethodDef) (ast.Result, error) {
	f := functor.FindOrCreate(it.Table.Top(), n.Name, false)
	f.AddClause(&functor.UserClause{Params: n.Params, Body: n.Body})
	it.Reg.InvalidateMethodCache()
	return f, nil
}
