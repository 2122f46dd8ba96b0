package interp

import (
	"myst/internal/ast"
	"myst/internal/rterr"
	"myst/internal/value"
)

func (it *Interpreter) VisitIdentifier(n *ast.Identifier) (ast.Result, error) {
	if v, ok := it.Table.Top().Lookup(n.Name); ok {
		return v, nil
	}
	return nil, rterr.New(rterr.KindUnresolvedIdentifier, "unresolved identifier %q", n.Name)
}

func (it *Interpreter) VisitSelfExpr(*ast.SelfExpr) (ast.Result, error) {
	return it.self(), nil
}

func (it *Interpreter) VisitIvarRef(n *ast.IvarRef) (ast.Result, error) {
	b, ok := value.AsBindable(it.self())
	if !ok {
		return nil, typeMisuse("%s does not carry instance variables", it.self().TypeName())
	}
	v, ok := b.Ivars().Get(n.Name)
	if !ok {
		return value.Nilv, nil
	}
	return v, nil
}

func (it *Interpreter) VisitAssign(n *ast.Assign) (ast.Result, error) {
	v, err := n.Value.Accept(it)
	if err != nil {
		return nil, err
	}
	it.Table.Top().Assign(n.Name, v.(value.Value))
	return v, nil
}

func (it *Interpreter) VisitIvarAssign(n *ast.IvarAssign) (ast.Result, error) {
	v, err := n.Value.Accept(it)
	if err != nil {
		return nil, err
	}
	b, ok := value.AsBindable(it.self())
	if !ok {
		return nil, typeMisuse("%s does not carry instance variables", it.self().TypeName())
	}
	b.Ivars().Set(n.Name, v.(value.Value))
	return v, nil
}
