package value

import "strings"

// List is an ordered, mutable sequence of Value. It carries its own
// per-object binding table (spec.md §3 invariant 5), lazily allocated since
// most lists never gain instance variables.
type List struct {
	Elements []Value
	ivars    *Ivarsmap
}

// NewList constructs a List from the given elements (copied by reference,
// not cloned).
func NewList(elems ...Value) *List {
	return &List{Elements: elems}
}

func (*List) Kind() Kind       { return KindList }
func (*List) TypeName() string { return "List" }
func (l *List) Truthy() bool   { return true }

func (l *List) Ivars() Ivars {
	if l.ivars == nil {
		l.ivars = NewIvarsmap()
	}
	return l.ivars
}

func (l *List) Inspect() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = Inspect(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Len returns the number of elements.
func (l *List) Len() int { return len(l.Elements) }
