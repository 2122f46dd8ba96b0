package prelude

import (
	"myst/internal/container"
	"myst/internal/functor"
	"myst/internal/rterr"
	"myst/internal/value"
)

// installFunctorModuleType registers the small set of reflective clauses
// Functor, Module, and Type need: name lookup and string rendering, plus
// direct invocation of a Functor as a block (spec.md §4.6's closing note
// that Functor, Module, and Type are ordinary built-in classes like any
// other, registered the same way).
func installFunctorModuleType(types *Types, env *Env) {
	registerNative(types.Functor, "call", 0, -1, func(recv value.Value, args []value.Value, block *functor.Functor) (value.Value, error) {
		f := recv.(*functor.Functor)
		return env.Reg.InvokeFunctor(env.Runner, f.ResolveSelf(value.Nilv), f, args, block)
	})
	registerNative(types.Functor, "name", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.String(recv.(*functor.Functor).Name), nil
	})
	registerNative(types.Functor, "to_s", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.String(value.Inspect(recv)), nil
	})

	registerNative(types.Module, "name", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.String(recv.(*container.Module).Name), nil
	})
	registerNative(types.Module, "to_s", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.String(value.Inspect(recv)), nil
	})

	registerNative(types.Type, "name", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.String(recv.(*container.Type).Name), nil
	})
	registerNative(types.Type, "to_s", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.String(value.Inspect(recv)), nil
	})
	registerNative(types.Type, "new", 0, -1, func(recv value.Value, args []value.Value, block *functor.Functor) (value.Value, error) {
		t := recv.(*container.Type)
		inst := container.NewInstance(t)
		if _, err := env.Reg.Invoke(env.Runner, inst, "init", args, block); err != nil {
			if rerr, ok := err.(*rterr.Error); ok && rerr.Kind == rterr.KindNoSuchMethod {
				return inst, nil
			}
			return nil, err
		}
		return inst, nil
	})
}
