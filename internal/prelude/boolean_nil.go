package prelude

import (
	"myst/internal/functor"
	"myst/internal/value"
)

// installBooleanNil registers the handful of clauses Boolean and Nil need:
// equality, negation, and string rendering. Neither type participates in
// arithmetic, so there is no shared helper with numeric.go beyond the
// registerNative idiom itself.
func installBooleanNil(types *Types, env *Env) {
	registerNative(types.Boolean, "==", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		b, ok := args[0].(value.Boolean)
		return value.Boolean(ok && b == recv.(value.Boolean)), nil
	})
	registerNative(types.Boolean, "!=", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		b, ok := args[0].(value.Boolean)
		return value.Boolean(!ok || b != recv.(value.Boolean)), nil
	})
	registerNative(types.Boolean, "!", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.Boolean(!bool(recv.(value.Boolean))), nil
	})
	registerNative(types.Boolean, "to_s", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.String(value.Inspect(recv)), nil
	})

	registerNative(types.Nil, "==", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		_, ok := args[0].(value.NilType)
		return value.Boolean(ok), nil
	})
	registerNative(types.Nil, "!=", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		_, ok := args[0].(value.NilType)
		return value.Boolean(!ok), nil
	})
	registerNative(types.Nil, "to_s", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.String("nil"), nil
	})
}
