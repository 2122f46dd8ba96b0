package prelude

import (
	"myst/internal/functor"
	"myst/internal/value"
)

// installSymbol registers Symbol's native clauses. Equality is pointer
// identity because Interner.Intern guarantees one *Symbol per name
// (spec.md §3 invariant 2) — no string comparison needed.
func installSymbol(types *Types, env *Env) {
	t := types.Symbol

	registerNative(t, "==", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		other, ok := args[0].(*value.Symbol)
		return value.Boolean(ok && other == recv.(*value.Symbol)), nil
	})
	registerNative(t, "!=", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		other, ok := args[0].(*value.Symbol)
		return value.Boolean(!ok || other != recv.(*value.Symbol)), nil
	})
	registerNative(t, "to_s", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.String(recv.(*value.Symbol).Name()), nil
	})
	registerNative(t, "name", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.String(recv.(*value.Symbol).Name()), nil
	})
}
