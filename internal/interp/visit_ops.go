package interp

import (
	"myst/internal/ast"
	"myst/internal/value"
)

// VisitBinaryOp desugars to a dispatched method call on Left named Op, with
// Right as the sole argument (spec.md §6's note that binary operators
// compile to method calls). `&&`/`||` are the one exception: they
// short-circuit on truthiness without evaluating Right unnecessarily,
// matching how every scripting language in the corpus treats them.
func (it *Interpreter) VisitBinaryOp(n *ast.BinaryOp) (ast.Result, error) {
	left, err := n.Left.Accept(it)
	if err != nil {
		return nil, err
	}
	lv := left.(value.Value)

	switch n.Op {
	case "&&":
		if !lv.Truthy() {
			return lv, nil
		}
		right, err := n.Right.Accept(it)
		if err != nil {
			return nil, err
		}
		return right.(value.Value), nil
	case "||":
		if lv.Truthy() {
			return lv, nil
		}
		right, err := n.Right.Accept(it)
		if err != nil {
			return nil, err
		}
		return right.(value.Value), nil
	}

	right, err := n.Right.Accept(it)
	if err != nil {
		return nil, err
	}
	return it.Reg.Invoke(it, lv, n.Op, []value.Value{right.(value.Value)}, nil)
}

// VisitUnaryOp desugars `-x` to `x.-@()` and `!x` to `x.!()`.
func (it *Interpreter) VisitUnaryOp(n *ast.UnaryOp) (ast.Result, error) {
	operand, err := n.Operand.Accept(it)
	if err != nil {
		return nil, err
	}
	name := n.Op
	if name == "-" {
		name = "-@"
	}
	return it.Reg.Invoke(it, operand.(value.Value), name, nil, nil)
}
