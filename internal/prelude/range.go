package prelude

import (
	"myst/internal/functor"
	"myst/internal/rterr"
	"myst/internal/value"
)

// installRange registers Range's native clauses (SPEC_FULL.md §4: Range is
// a supplemented built-in, wired through the same registration path as List
// and Map rather than given special-cased evaluator support).
func installRange(types *Types, env *Env) {
	t := types.Range

	registerNative(t, "each", 0, 0, func(recv value.Value, args []value.Value, block *functor.Functor) (value.Value, error) {
		if block == nil {
			return nil, rterr.New(rterr.KindArityMismatch, "each requires a block")
		}
		r := recv.(*value.Range)
		err := r.Each(func(i value.Integer) error {
			_, err := env.callBlock(block, value.Nilv, i)
			return err
		})
		if err != nil {
			return nil, err
		}
		return recv, nil
	})
	registerNative(t, "to_a", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		r := recv.(*value.Range)
		n, err := r.Len()
		if err != nil {
			return nil, rterr.New(rterr.KindIndexError, "range too large to materialize: %v", err)
		}
		elems := make([]value.Value, 0, n)
		_ = r.Each(func(i value.Integer) error {
			elems = append(elems, i)
			return nil
		})
		return value.NewList(elems...), nil
	})
	registerNative(t, "include?", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		n, ok := args[0].(value.Integer)
		if !ok {
			return value.Boolean(false), nil
		}
		return value.Boolean(recv.(*value.Range).Includes(n)), nil
	})
	registerNative(t, "==", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		other, ok := args[0].(*value.Range)
		r := recv.(*value.Range)
		eq := ok && other.From == r.From && other.To == r.To && other.Exclusive == r.Exclusive
		return value.Boolean(eq), nil
	})
	registerNative(t, "to_s", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.String(value.Inspect(recv)), nil
	})
}
