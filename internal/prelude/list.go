package prelude

import (
	"context"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"myst/internal/functor"
	"myst/internal/rterr"
	"myst/internal/value"
)

// installList registers List's native clauses. `==` walks both lists
// pairwise through dispatched equality (env.dispatchedEqual), never raw Go
// `==`, since elements may themselves be Instances with user-defined `==`.
func installList(types *Types, env *Env) {
	t := types.List

	registerNative(t, "[]", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		idx, ok := args[0].(value.Integer)
		if !ok {
			return nil, rterr.New(rterr.KindTypeMisuse, "[] expected an Integer index, got %s", args[0].TypeName())
		}
		l := recv.(*value.List)
		i, err := safecast.Conv[int](int64(idx))
		if err != nil {
			return nil, rterr.New(rterr.KindIndexError, "index %d does not fit a host int: %v", idx, err)
		}
		if i < 0 {
			i += len(l.Elements)
		}
		if i < 0 || i >= len(l.Elements) {
			return nil, rterr.New(rterr.KindIndexError, "index %d out of range for a List of size %d", idx, len(l.Elements))
		}
		return l.Elements[i], nil
	})
	registerNative(t, "[]=", 2, 2, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		idx, ok := args[0].(value.Integer)
		if !ok {
			return nil, rterr.New(rterr.KindTypeMisuse, "[]= expected an Integer index, got %s", args[0].TypeName())
		}
		l := recv.(*value.List)
		i, err := safecast.Conv[int](int64(idx))
		if err != nil {
			return nil, rterr.New(rterr.KindIndexError, "index %d does not fit a host int: %v", idx, err)
		}
		if i < 0 {
			i += len(l.Elements)
		}
		if i < 0 || i >= len(l.Elements) {
			return nil, rterr.New(rterr.KindIndexError, "index %d out of range for a List of size %d", idx, len(l.Elements))
		}
		l.Elements[i] = args[1]
		return args[1], nil
	})
	registerNative(t, "push", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		l := recv.(*value.List)
		l.Elements = append(l.Elements, args[0])
		return l, nil
	})
	registerNative(t, "size", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.Integer(recv.(*value.List).Len()), nil
	})
	registerNative(t, "+", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		other, ok := args[0].(*value.List)
		if !ok {
			return nil, rterr.New(rterr.KindTypeMisuse, "+ expected a List, got %s", args[0].TypeName())
		}
		l := recv.(*value.List)
		combined := make([]value.Value, 0, l.Len()+other.Len())
		combined = append(combined, l.Elements...)
		combined = append(combined, other.Elements...)
		return value.NewList(combined...), nil
	})
	registerNative(t, "==", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		other, ok := args[0].(*value.List)
		if !ok || other.Len() != recv.(*value.List).Len() {
			return value.Boolean(false), nil
		}
		l := recv.(*value.List)
		for i := range l.Elements {
			eq, err := env.dispatchedEqual(l.Elements[i], other.Elements[i])
			if err != nil {
				return nil, err
			}
			if !eq {
				return value.Boolean(false), nil
			}
		}
		return value.Boolean(true), nil
	})
	registerNative(t, "each", 0, 0, func(recv value.Value, args []value.Value, block *functor.Functor) (value.Value, error) {
		if block == nil {
			return nil, rterr.New(rterr.KindArityMismatch, "each requires a block")
		}
		l := recv.(*value.List)
		for _, el := range l.Elements {
			if _, err := env.callBlock(block, value.Nilv, el); err != nil {
				return nil, err
			}
		}
		return recv, nil
	})
	registerNative(t, "to_s", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.String(value.Inspect(recv)), nil
	})
	// each_concurrent fans the per-element inspect digest (standing in for
	// the "independent native-side work" SPEC_FULL.md §3 describes, e.g. a
	// hash worth precomputing before the block runs) out across goroutines,
	// then invokes the block once per element in list order exactly like
	// each. The block itself never runs concurrently with another block
	// invocation.
	registerNative(t, "each_concurrent", 0, 0, func(recv value.Value, args []value.Value, block *functor.Functor) (value.Value, error) {
		if block == nil {
			return nil, rterr.New(rterr.KindArityMismatch, "each_concurrent requires a block")
		}
		l := recv.(*value.List)
		digests := make([]string, len(l.Elements))
		g, _ := errgroup.WithContext(context.Background())
		for i, el := range l.Elements {
			i, el := i, el
			g.Go(func() error {
				digests[i] = value.Inspect(el)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		_, takesDigest := block.SelectClause(2)
		for i, el := range l.Elements {
			blockArgs := []value.Value{el}
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
