package interp

import (
	"myst/internal/ast"
	"myst/internal/rterr"
	"myst/internal/value"
)

func (it *Interpreter) VisitIf(n *ast.If) (ast.Result, error) {
	cond, err := n.Cond.Accept(it)
	if err != nil {
		return nil, err
	}
	if cond.(value.Value).Truthy() {
		return it.evalStatements(n.Then)
	}
	if n.Else == nil {
		return value.Nilv, nil
	}
	return it.evalStatements(n.Else)
}

func (it *Interpreter) VisitWhile(n *ast.While) (ast.Result, error) {
	var last value.Value = value.Nilv
	for {
		cond, err := n.Cond.Accept(it)
		if err != nil {
			return nil, err
		}
		if !cond.(value.Value).Truthy() {
			return last, nil
		}
		res, err := it.evalStatements(n.Body)
		if err != nil {
			return nil, err
		}
		last = res.(value.Value)
	}
}

// VisitRescue supplements the distilled spec (SPEC_FULL.md §4): it evaluates
// Body, and if that produces a runtime error (including a user `raise`),
// binds the rescued value to Param (if non-empty) and evaluates Handler
// instead, swallowing the error rather than propagating it further.
func (it *Interpreter) VisitRescue(n *ast.Rescue) (ast.Result, error) {
	res, err := it.evalStatements(n.Body)
	if err == nil {
		return res, nil
	}
	rerr, ok := err.(*rterr.Error)
	if !ok {
		return nil, err
	}

	var bound value.Value
	if rerr.Kind == rterr.KindUserRaised {
		if v, ok := rerr.Raised.(value.Value); ok {
			bound = v
		} else {
			bound = value.Nilv
		}
	} else {
		bound = value.String(rerr.Error())
	}
	if n.Param != "" {
		it.Table.Top().Define(n.Param, bound)
	}
	return it.evalStatements(n.Handler)
}

// VisitRaise supplements the distilled spec: raises Value as a user-level
// failure, reported as a *rterr.Error of KindUserRaised so it propagates
// through the same returned-error path every other runtime failure uses
// and unwinds to the nearest enclosing Rescue.
func (it *Interpreter) VisitRaise(n *ast.Raise) (ast.Result, error) {
	v, err := n.Value.Accept(it)
	if err != nil {
		return nil, err
	}
	return nil, &rterr.Error{Kind: rterr.KindUserRaised, Message: value.Inspect(v.(value.Value)), Raised: v.(value.Value)}
}
