// Package value implements the heterogeneous runtime value domain: the
// tagged union of primitive and heap values the rest of the interpreter
// dispatches, binds, and mutates.
package value

import "fmt"

// Kind tags the concrete variant a Value carries.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindString
	KindNil
	KindSymbol
	KindList
	KindMap
	KindInstance
	KindModule
	KindType
	KindFunctor
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	case KindString:
		return "String"
	case KindNil:
		return "Nil"
	case KindSymbol:
		return "Symbol"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	case KindInstance:
		return "Instance"
	case KindModule:
		return "Module"
	case KindType:
		return "Type"
	case KindFunctor:
		return "Functor"
	case KindRange:
		return "Range"
	default:
		return "Invalid"
	}
}

// Value is the single runtime representation every piece of language state
// flows through: primitives are inline, heap variants share reference
// semantics through the pointer each wraps.
type Value interface {
	// Kind reports the tagged variant.
	Kind() Kind
	// TypeName is the language-level type name used for dispatch and for
	// diagnostics (invariant 3 of spec.md §3).
	TypeName() string
	// Truthy implements invariant 3: only Nil and Boolean(false) are falsy.
	Truthy() bool
}

// Bindable is implemented by values that carry a per-object binding table
// (instance variables), per spec.md §3 invariant 5. Primitive values do not
// implement this; attempting to treat one as Bindable is a type-misuse
// error at the call site, not a panic buried in this package.
type Bindable interface {
	Value
	// Ivars returns the mutable per-object binding table.
	Ivars() Ivars
}

// Ivars is the minimal binding-table contract a heap value's instance
// variables need; internal/scope.Scope satisfies it.
type Ivars interface {
	Get(name string) (Value, bool)
	Set(name string, v Value)
}

// AsBindable reports whether v carries a per-object binding table, per
// invariant 4: primitives never do.
func AsBindable(v Value) (Bindable, bool) {
	b, ok := v.(Bindable)
	return b, ok
}

// Inspect renders a debug/REPL-facing representation. Built-in kinds are
// handled here; Instance/Module/Type/Functor override via Stringer-like
// methods on their own types, dispatched by the caller's type switch.
func Inspect(v Value) string {
	if v == nil {
		return "nil"
	}
	if s, ok := v.(interface{ Inspect() string }); ok {
		return s.Inspect()
	}
	return fmt.Sprintf("#<%s>", v.TypeName())
}
