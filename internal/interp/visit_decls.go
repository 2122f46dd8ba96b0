package interp

import (
	"myst/internal/ast"
	"myst/internal/container"
	"myst/internal/value"
)

// VisitModuleDecl evaluates a module declaration: reopens an existing
// module of the same name bound in the current scope, or creates a fresh
// one, then evaluates Body with the module pushed as both the current self
// (so nested `include`/`extend` and method defs see it) and the current
// scope (so MethodDef registers into the module's own scope).
func (it *Interpreter) VisitModuleDecl(n *ast.ModuleDecl) (ast.Result, error) {
	var mod *container.Module
	if existing, ok := it.Table.Top().GetLocal(n.Name); ok {
		if m, ok := existing.(*container.Module); ok {
			mod = m
		}
	}
	if mod == nil {
		mod = container.NewModule(n.Name)
		it.Table.Top().Define(n.Name, mod)
	}

	it.pushSelf(mod)
	it.Table.Push(mod.Scope)
	_, err := it.evalStatements(n.Body)
	it.Table.Pop()
	it.popSelf()
	if err != nil {
		return nil, err
	}
	return mod, nil
}

// VisitTypeDecl evaluates a class declaration analogously to VisitModuleDecl:
// reopen-or-create, resolve the optional supertype by name, then evaluate
// Body with the Type pushed as self and its instance scope as the current
// scope (so a bare MethodDef defines an instance method).
func (it *Interpreter) VisitTypeDecl(n *ast.TypeDecl) (ast.Result, error) {
	var typ *container.Type
	if existing, ok := it.Table.Top().GetLocal(n.Name); ok {
		if t, ok := existing.(*container.Type); ok {
			typ = t
		}
	}
	if typ == nil {
		var super *container.Type
		if n.Supertype != "" {
			v, ok := it.Table.Top().Lookup(n.Supertype)
			if !ok {
				return nil, typeMisuse("unresolved supertype %q", n.Supertype)
			}
			super, ok = v.(*container.Type)
			if !ok {
				return nil, typeMisuse("%q is not a Type", n.Supertype)
			}
		}
		typ = container.NewType(n.Name, super)
		it.Table.Top().Define(n.Name, typ)
	}

	it.pushSelf(typ)
	it.Table.Push(typ.InstanceScope)
	_, err := it.evalStatements(n.Body)
	it.Table.Pop()
	it.popSelf()
	if err != nil {
		return nil, err
	}
	return typ, nil
}

// currentType returns self as a *container.Type, or a type-misuse error if
// an include/extend directive appears outside a TypeDecl body.
func (it *Interpreter) currentType() (*container.Type, error) {
	t, ok := it.self().(*container.Type)
	if !ok {
		return nil, typeMisuse("include/extend used outside a type body")
	}
	return t, nil
}

func (it *Interpreter) resolveModule(name string) (*container.Module, error) {
	v, ok := it.Table.Top().Lookup(name)
	if !ok {
		return nil, typeMisuse("unresolved module %q", name)
	}
	m, ok := v.(*container.Module)
	if !ok {
		return nil, typeMisuse("%q is not a Module", name)
	}
	return m, nil
}

func (it *Interpreter) VisitIncludeDirective(n *ast.IncludeDirective) (ast.Result, error) {
	t, err := it.currentType()
	if err != nil {
		return nil, err
	}
	m, err := it.resolveModule(n.ModuleName)
	if err != nil {
		return nil, err
	}
	t.Include(m)
	it.Reg.InvalidateMethodCache()
	return value.Nilv, nil
}

func (it *Interpreter) VisitExtendDirective(n *ast.ExtendDirective) (ast.Result, error) {
	t, err := it.currentType()
	if err != nil {
		return nil, err
	}
	m, err := it.resolveModule(n.ModuleName)
	if err != nil {
		return nil, err
	}
	t.Extend(m)
	it.Reg.InvalidateMethodCache()
	return value.Nilv, nil
}
