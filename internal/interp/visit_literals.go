package interp

import (
	"myst/internal/ast"
	"myst/internal/value"
)

func (it *Interpreter) VisitProgram(n *ast.Program) (ast.Result, error) {
	return it.evalStatements(n.Statements)
}

func (it *Interpreter) VisitIntegerLit(n *ast.IntegerLit) (ast.Result, error) {
	return value.Integer(n.Value), nil
}

func (it *Interpreter) VisitFloatLit(n *ast.FloatLit) (ast.Result, error) {
	return value.Float(n.Value), nil
}

func (it *Interpreter) VisitBooleanLit(n *ast.BooleanLit) (ast.Result, error) {
	return value.Boolean(n.Value), nil
}

func (it *Interpreter) VisitStringLit(n *ast.StringLit) (ast.Result, error) {
	return value.String(n.Value), nil
}

func (it *Interpreter) VisitSymbolLit(n *ast.SymbolLit) (ast.Result, error) {
	return it.Symbols.Intern(n.Name), nil
}

func (it *Interpreter) VisitNilLit(*ast.NilLit) (ast.Result, error) {
	return value.Nilv, nil
}

func (it *Interpreter) VisitListLit(n *ast.ListLit) (ast.Result, error) {
	elems := make([]value.Value, len(n.Elements))
	for i, e := range n.Elements {
		res, err := e.Accept(it)
		if err != nil {
			return nil, err
		}
		elems[i] = res.(value.Value)
	}
	return value.NewList(elems...), nil
}

func (it *Interpreter) VisitMapLit(n *ast.MapLit) (ast.Result, error) {
	m := value.NewMap()
	for i, kn := range n.Keys {
		k, err := kn.Accept(it)
		if err != nil {
			return nil, err
		}
		v, err := n.Vals[i].Accept(it)
		if err != nil {
			return nil, err
		}
		m.Set(k.(value.Value), v.(value.Value))
	}
	return m, nil
}
