package prelude

import (
	"myst/internal/container"
	"myst/internal/functor"
	"myst/internal/rterr"
	"myst/internal/value"
)

func asFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Integer:
		return float64(n), true
	case value.Float:
		return float64(n), true
	default:
		return 0, false
	}
}

// installNumeric registers arithmetic and comparison clauses on Integer
// and Float, following the same "one native clause per operator, dispatch
// on the receiver" shape spec.md §4.5 spells out in detail for Map.
func installNumeric(types *Types, env *Env) {
	installArith(types.Integer, true)
	installArith(types.Float, false)
}

func installArith(t *container.Type, isInt bool) {
	wrap := func(f float64) value.Value {
		if isInt {
			return value.Integer(f)
		}
		return value.Float(f)
	}

	binop := func(name string, op func(a, b float64) float64) {
		registerNative(t, name, 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
			a, _ := asFloat(recv)
			b, ok := asFloat(args[0])
			if !ok {
				return nil, rterr.New(rterr.KindTypeMisuse, "%s expected a numeric argument, got %s", name, args[0].TypeName())
			}
			return wrap(op(a, b)), nil
		})
	}
	binop("+", func(a, b float64) float64 { return a + b })
	binop("-", func(a, b float64) float64 { return a - b })
	binop("*", func(a, b float64) float64 { return a * b })
	registerNative(t, "/", 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		a, _ := asFloat(recv)
		b, ok := asFloat(args[0])
		if !ok {
			return nil, rterr.New(rterr.KindTypeMisuse, "/ expected a numeric argument, got %s", args[0].TypeName())
		}
		if b == 0 {
			return nil, rterr.New(rterr.KindTypeMisuse, "division by zero")
		}
		return wrap(a / b), nil
	})

	cmp := func(name string, op func(a, b float64) bool) {
		registerNative(t, name, 1, 1, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
			a, _ := asFloat(recv)
			b, ok := asFloat(args[0])
			if !ok {
				return value.Boolean(false), nil
			}
			return value.Boolean(op(a, b)), nil
		})
	}
	cmp("==", func(a, b float64) bool { return a == b })
	cmp("!=", func(a, b float64) bool { return a != b })
	cmp("<", func(a, b float64) bool { return a < b })
	cmp("<=", func(a, b float64) bool { return a <= b })
	cmp(">", func(a, b float64) bool { return a > b })
	cmp(">=", func(a, b float64) bool { return a >= b })

	registerNative(t, "-@", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		a, _ := asFloat(recv)
		return wrap(-a), nil
	})
	registerNative(t, "to_s", 0, 0, func(recv value.Value, args []value.Value, _ *functor.Functor) (value.Value, error) {
		return value.String(value.Inspect(recv)), nil
	})
}
