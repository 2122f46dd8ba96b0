// Package prelude wires native built-in operations into the dispatch
// system uniformly with user-defined ones (spec.md §4.6, component F).
package prelude

import (
	"myst/internal/container"
	"myst/internal/dispatch"
	"myst/internal/functor"
	"myst/internal/scope"
	"myst/internal/value"
)

// Env carries the shared collaborators native clauses need to re-enter
// dispatch (e.g. to compute a dispatched `==` on list/map elements). Runner
// is set by internal/interp once the Interpreter itself exists — native
// clauses close over env and read env.Runner at call time, by which point
// construction has finished, rather than requiring the prelude to exist
// before the interpreter that uses it.
type Env struct {
	Reg     *dispatch.Registry
	Runner  dispatch.BodyRunner
	Symbols *value.Interner
}

// dispatchedEqual implements the "compared by the language-level equality
// operation (not host hashing alone)" requirement of spec.md §4.5 wherever
// a native clause must compare two arbitrary Values: it re-enters dispatch
// to invoke `==` on a, exactly as user code would.
func (env *Env) dispatchedEqual(a, b value.Value) (bool, error) {
	res, err := env.Reg.Invoke(env.Runner, a, "==", []value.Value{b}, nil)
	if err != nil {
		return false, err
	}
	return res.Truthy(), nil
}

// callBlock invokes a block Functor with args through ordinary dispatch
// machinery (so a block argument is exercised exactly like any other
// Functor), using closedSelf as the receiver bound to `this` inside it.
func (env *Env) callBlock(block *functor.Functor, closedSelf value.Value, args ...value.Value) (value.Value, error) {
	return env.Reg.InvokeFunctor(env.Runner, closedSelf, block, args, nil)
}

// registerNative appends a native clause named name to t's instance scope,
// creating the Functor if this is the first clause registered under that
// name (spec.md §4.6: "A native method registration is a tuple (type,
// method_name, native_callable) that appends a native clause to the
// Functor bound to method_name in type.instance_scope (creating the
// Functor if absent)").
func registerNative(t *container.Type, name string, min, max int, fn functor.NativeFunc) {
	registerNativeScope(t.InstanceScope, name, min, max, fn)
}

// registerStaticNative is registerNative for a type's static scope (class
// methods). No prelude installer currently calls it.
func registerStaticNative(t *container.Type, name string, min, max int, fn functor.NativeFunc) {
	registerNativeScope(t.StaticScope, name, min, max, fn)
}

func registerNativeScope(s *scope.Scope, name string, min, max int, fn functor.NativeFunc) {
	f := functor.FindOrCreate(s, name, false)
	f.AddClause(&functor.NativeClause{Fn: fn, MinArgs: min, MaxArgs: max})
}
