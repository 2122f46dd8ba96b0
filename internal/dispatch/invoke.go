package dispatch

import (
	"myst/internal/container"
	"myst/internal/functor"
	"myst/internal/rterr"
	"myst/internal/scope"
	"myst/internal/value"
)

// BodyRunner evaluates a user clause's body in frame, with self bound as
// `this`/`self` and instance-variable lookups' target, and returns the
// value of its last evaluated expression (spec.md §4.4: "User-clause result
// is the value of the last evaluated expression in the body"). Implemented
// by internal/interp's driver; dispatch itself never walks AST nodes, which
// keeps this package free of a dependency on the driver.
type BodyRunner interface {
	RunBody(clause *functor.UserClause, frame *scope.Scope, self value.Value) (value.Value, error)
}

// Lookup implements spec.md §4.4 steps 1-2: build recv's dispatch chain and
// walk it for the first scope that binds name to a Functor. When a
// MethodCache is installed, a prior resolution for the same (receiver
// type, name) pair short-circuits the walk entirely.
func (r *Registry) Lookup(recv value.Value, name string) (*functor.Functor, error) {
	if inst, ok := recv.(*container.Instance); ok {
		if v, ok := inst.Scope.GetLocal(name); ok {
			if f, ok := v.(*functor.Functor); ok {
				return f, nil
			}
		}
	}
	id, typeName, cacheable := r.cacheIdentity(recv)
	if cacheable && r.MethodCache != nil {
		if f, ok := r.MethodCache.Get(id, name, typeName); ok {
			return f, nil
		}
	}

	chain, err := r.Chain(recv)
	if err != nil {
		return nil, err
	}
	for _, s := range chain {
		if v, ok := s.Get(name); ok {
			if f, ok := v.(*functor.Functor); ok {
				if cacheable && r.MethodCache != nil {
					r.MethodCache.Put(id, name, f)
				}
				return f, nil
			}
			// A non-Functor binding of the same name does not end the
			// lookup: it is skipped and the walk continues with the next
			// scope in the chain.
			continue
		}
	}
	return nil, rterr.New(rterr.KindNoSuchMethod, "no method %q on a %s", name, recv.TypeName())
}

// Invoke implements spec.md §4.4 end-to-end: lookup, clause selection, and
// invocation, with the receiver bound as `this`, positional parameters
// bound by position, a splat parameter (if any) bound to the tail, and the
// block (if any) bound to the block parameter.
func (r *Registry) Invoke(runner BodyRunner, recv value.Value, name string, args []value.Value, block *functor.Functor) (value.Value, error) {
	f, err := r.Lookup(recv, name)
	if err != nil {
		return nil, err
	}
	return r.InvokeFunctor(runner, recv, f, args, block)
}

// InvokeFunctor selects a clause from f and invokes it directly, skipping
// the name lookup — used when the caller already resolved the Functor
// (e.g. calling a block argument).
func (r *Registry) InvokeFunctor(runner BodyRunner, recv value.Value, f *functor.Functor, args []value.Value, block *functor.Functor) (value.Value, error) {
	clause, ok := f.SelectClause(len(args))
	if !ok {
		return nil, rterr.New(rterr.KindArityMismatch, "%q has no clause accepting %d argument(s)", f.Name, len(args))
	}

	switch c := clause.(type) {
	case *functor.NativeClause:
		return c.Fn(f.ResolveSelf(recv), args, block)
	case *functor.UserClause:
		frame := f.NewFrame()
		if err := functor.BindArgs(frame, c, args); err != nil {
			return nil, rterr.New(rterr.KindArityMismatch, "%s", err)
		}
		if c.Params.BlockParam != "" {
			if block != nil {
				frame.Define(c.Params.BlockParam, block)
			} else {
				frame.Define(c.Params.BlockParam, value.Nilv)
			}
		}
		return runner.RunBody(c, frame, f.ResolveSelf(recv))
	default:
		return nil, rterr.New(rterr.KindInterpreterBug, "unknown clause type %T", clause)
	}
}
