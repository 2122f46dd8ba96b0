package prelude

import (
	"strings"

	"myst/internal/functor"
	"myst/internal/rterr"
	"myst/internal/value"
)

// installString registers String's native clauses: concatenation,
// comparison, equality, indexing, and a handful of the query/transform
// methods a scripting language's String class is expected to carry.
func installString(types *Types, env *Env) {
	t := types.String

	registerNative(t, "+", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		other, ok := args[0].(value.String)
		if !ok {
			return nil, rterr.New(rterr.KindTypeMisuse, "+ expected a String, got %s", args[0].TypeName())
		}
		return recv.(value.String) + other, nil
	})
	registerNative(t, "==", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		other, ok := args[0].(value.String)
		return value.Boolean(ok && other == recv.(value.String)), nil
	})
	registerNative(t, "!=", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		other, ok := args[0].(value.String)
		return value.Boolean(!ok || other != recv.(value.String)), nil
	})
	registerNative(t, "<", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		other, ok := args[0].(value.String)
		if !ok {
			return nil, rterr.New(rterr.KindTypeMisuse, "< expected a String, got %s", args[0].TypeName())
		}
		return value.Boolean(recv.(value.String) < other), nil
	})
	// size reports display width (East Asian wide/fullwidth runes count as
	// 2 columns), not rune count, per SPEC_FULL.md §2's value.DisplayWidth
	// wiring — a REPL's prompt math needs the former, not the latter.
	registerNative(t, "size", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.Integer(value.DisplayWidth(string(recv.(value.String)))), nil
	})
	registerNative(t, "[]", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		idx, ok := args[0].(value.Integer)
		if !ok {
			return nil, rterr.New(rterr.KindTypeMisuse, "[] expected an Integer index, got %s", args[0].TypeName())
		}
		runes := []rune(string(recv.(value.String)))
		i := int(idx)
		if i < 0 {
			i += len(runes)
		}
		if i < 0 || i >= len(runes) {
			return nil, rterr.New(rterr.KindIndexError, "index %d out of range for a String of size %d", idx, len(runes))
		}
		return value.String(runes[i]), nil
	})
	registerNative(t, "upcase", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.String(strings.ToUpper(string(recv.(value.String)))), nil
	})
	registerNative(t, "downcase", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.String(strings.ToLower(string(recv.(value.String)))), nil
	})
	registerNative(t, "split", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		sep, ok := args[0].(value.String)
		if !ok {
			return nil, rterr.New(rterr.KindTypeMisuse, "split expected a String separator, got %s", args[0].TypeName())
		}
		parts := strings.Split(string(recv.(value.String)), string(sep))
		elems := make([]value.Value, len(parts))
		for i, p := range parts {
			elems[i] = value.String(p)
		}
		return value.NewList(elems...), nil
	})
	registerNative(t, "to_s", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return recv, nil
	})
}
