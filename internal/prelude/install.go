package prelude

import (
	"myst/internal/container"
	"myst/internal/scope"
	"myst/internal/value"
)

// Types holds the built-in Type object for every primitive/built-in class,
// for callers (e.g. a TypeDecl evaluator binding a name in the kernel
// scope) that need to refer to them by name.
type Types struct {
	Integer, Float, Boolean, String, Nil, Symbol *container.Type
	List, Map, Range                             *container.Type
	Functor, Module, Type                         *container.Type
}

// Install allocates a Type object in the root kernel scope for every
// built-in class, registers native clauses on each one's instance scope,
// and records each in both the returned Types and env.Reg (spec.md §4.6).
// This is what makes `x + y` compile to the same dispatch path whether x
// is a user instance or a Map.
func Install(root *scope.Scope, env *Env) *Types {
	mk := func(name string, kind value.Kind) *container.Type {
		t := container.NewType(name, nil)
		env.Reg.Register(kind, t)
		root.Define(name, t)
		return t
	}

	types := &Types{
		Integer: mk("Integer", value.KindInteger),
		Float:   mk("Float", value.KindFloat),
		Boolean: mk("Boolean", value.KindBoolean),
		String:  mk("String", value.KindString),
		Nil:     mk("Nil", value.KindNil),
		Symbol:  mk("Symbol", value.KindSymbol),
		List:    mk("List", value.KindList),
		Map:     mk("Map", value.KindMap),
		Range:   mk("Range", value.KindRange),
		Functor: mk("Functor", value.KindFunctor),
		Module:  mk("Module", value.KindModule),
		Type:    mk("Type", value.KindType),
	}

	installNumeric(types, env)
	installBooleanNil(types, env)
	installString(types, env)
	installSymbol(types, env)
	installList(types, env)
	installMap(types, env)
	installRange(types, env)
	installFunctorModuleType(types, env)

	return types
}
