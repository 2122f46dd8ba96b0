package value

// Ivarsmap is a small ordered string-keyed binding table used as the
// per-object instance-variable store for List, Map and Functor values
// (spec.md §3 invariant 5). Unlike internal/scope.Scope it never chains to
// a parent: ivars are always looked up on the object itself, never
// inherited, so a flat map is all these three value kinds need.
type Ivarsmap struct {
	order []string
	vals  map[string]Value
}

// NewIvarsmap constructs an empty binding table.
func NewIvarsmap() *Ivarsmap {
	return &Ivarsmap{vals: make(map[string]Value)}
}

// Get returns the bound value for name, if any.
func (m *Ivarsmap) Get(name string) (Value, bool) {
	v, ok := m.vals[name]
	return v, ok
}

// Set binds name to v, recording insertion order for the first write.
func (m *Ivarsmap) Set(name string, v Value) {
	if _, exists := m.vals[name]; !exists {
		m.order = append(m.order, name)
	}
	m.vals[name] = v
}

// Names returns instance-variable names in first-write order.
func (m *Ivarsmap) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}
