package prelude

import (
	"context"

	"golang.org/x/sync/errgroup"

	"myst/internal/functor"
	"myst/internal/rterr"
	"myst/internal/value"
)

// installMap registers Map's native clauses per spec.md §4.5. Equality,
// subset, and merge each have documented quirks carried over deliberately
// rather than "fixed": see the comments on `!=` and `<=`/`<` below.
func installMap(types *Types, env *Env) {
	t := types.Map

	registerNative(t, "[]", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		v, _ := recv.(*value.Map).Get(args[0])
		return v, nil
	})
	registerNative(t, "[]=", 2, 2, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		recv.(*value.Map).Set(args[0], args[1])
		return args[1], nil
	})
	registerNative(t, "size", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.Integer(recv.(*value.Map).Len()), nil
	})
	registerNative(t, "+", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		other, ok := args[0].(*value.Map)
		if !ok {
			return nil, rterr.New(rterr.KindTypeMisuse, "+ expected a Map, got %s", args[0].TypeName())
		}
		m := recv.(*value.Map)
		out := value.NewMap()
		_ = m.Each(func(k, v value.Value) error { out.Set(k, v); return nil })
		_ = other.Each(func(k, v value.Value) error { out.Set(k, v); return nil })
		return out, nil
	})
	registerNative(t, "each", 0, 0, func(recv value.Value, args []value.Value, block *functor.Functor) (value.Value, error) {
		if block == nil {
			return nil, rterr.New(rterr.KindArityMismatch, "each requires a block")
		}
		m := recv.(*value.Map)
		err := m.Each(func(k, v value.Value) error {
			_, err := env.callBlock(block, value.Nilv, k, v)
			return err
		})
		if err != nil {
			return nil, err
		}
		return recv, nil
	})

	// `==`: same size, and every key at position i equals the other map's
	// key at position i (dispatched, not host identity), and the paired
	// values also equal (spec.md §4.5's Map equality rule).
	registerNative(t, "==", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		m := recv.(*value.Map)
		other, ok := args[0].(*value.Map)
		if !ok || other.Len() != m.Len() {
			return value.Boolean(false), nil
		}
		keys, vals := m.Keys(), m.Vals()
		okeys, ovals := other.Keys(), other.Vals()
		for i := range keys {
			keq, err := env.dispatchedEqual(keys[i], okeys[i])
			if err != nil {
				return nil, err
			}
			if !keq {
				return value.Boolean(false), nil
			}
			veq, err := env.dispatchedEqual(vals[i], ovals[i])
			if err != nil {
				return nil, err
			}
			if !veq {
				return value.Boolean(false), nil
			}
		}
		return value.Boolean(true), nil
	})

	// `!=` carries the documented bug (spec §9 open question 2): the key
	// comparison's condition is inverted, so it returns true as soon as the
	// first pair of keys matches, rather than when they differ. This is
	// observed behavior, preserved as-is rather than silently corrected.
	registerNative(t, "!=", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		m := recv.(*value.Map)
		other, ok := args[0].(*value.Map)
		if !ok || other.Len() != m.Len() {
			return value.Boolean(true), nil
		}
		keys, vals := m.Keys(), m.Vals()
		okeys, ovals := other.Keys(), other.Vals()
		for i := range keys {
			keq, err := env.dispatchedEqual(keys[i], okeys[i])
			if err != nil {
				return nil, err
			}
			if keq {
				return value.Boolean(true), nil
			}
			veq, err := env.dispatchedEqual(vals[i], ovals[i])
			if err != nil {
				return nil, err
			}
			if !veq {
				return value.Boolean(true), nil
			}
		}
		return value.Boolean(false), nil
	})

	// `<=`/`<` use host key-set difference rather than dispatched equality
	// (spec §4.5, flagged in §9 open question 1 as inconsistent with `==`
	// above but specified as-is).
	registerNative(t, "<=", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		other, ok := args[0].(*value.Map)
		if !ok {
			return nil, rterr.New(rterr.KindTypeMisuse, "<= expected a Map, got %s", args[0].TypeName())
		}
		m := recv.(*value.Map)
		for _, k := range m.Keys() {
			if _, found := other.Get(k); !found {
				return value.Boolean(false), nil
			}
		}
		return value.Boolean(true), nil
	})
	registerNative(t, "<", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		other, ok := args[0].(*value.Map)
		if !ok {
			return nil, rterr.New(rterr.KindTypeMisuse, "< expected a Map, got %s", args[0].TypeName())
		}
		m := recv.(*value.Map)
		for _, k := range m.Keys() {
			if _, found := other.Get(k); !found {
				return value.Boolean(false), nil
			}
		}
		return value.Boolean(m.Len() != other.Len()), nil
	})

	registerNative(t, "to_s", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.String(value.Inspect(recv)), nil
	})

	// each_concurrent fans the per-value inspect digest out across goroutines
	// (the "independent native-side work" SPEC_FULL.md §3 describes) before
	// running the block once per pair in key order, exactly like each. A
	// block that accepts a third parameter receives the precomputed digest;
	// one that doesn't runs exactly as it would under each.
	registerNative(t, "each_concurrent", 0, 0, func(recv value.Value, args []value.Value, block *functor.Functor) (value.Value, error) {
		if block == nil {
			return nil, rterr.New(rterr.KindArityMismatch, "each_concurrent requires a block")
		}
		m := recv.(*value.Map)
		keys, vals := m.Keys(), m.Vals()
		digests := make([]string, len(vals))
		g, _ := errgroup.WithContext(context.Background())
		for i, v := range vals {
			i, v := i, v
			g.Go(func() error {
				digests[i] = value.Inspect(v)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		_, takesDigest := block.SelectClause(3)
		for i := range keys {
			blockArgs := []value.Value{keys[i], vals[i]}
			if takesDigest {
				blockArgs = append(blockArgs, value.String(digests[i]))
			}
			if _, err := env.callBlock(block, value.Nilv, blockArgs...); err != nil {
				return nil, err
			}
		}
		return recv, nil
	})
}
