package value

import "strings"

// Map is an ordered mapping from Value to Value. It preserves insertion
// order of keys (spec.md §3 invariant 7) and carries its own per-object
// binding table.
//
// Storage uses a host-level fast path: primitive keys (Integer, Float,
// Boolean, String, Symbol, Nil) get a canonical string signature and land
// in an index for O(1) lookup; any other key kind (List, Map, Instance,
// Module, Type, Functor, Range) falls back to a linear scan compared by Go
// interface equality. This host-level comparison backs Map's own storage
// only — it must never substitute for the language-level `==` operator
// (spec.md §9), which internal/prelude implements as a native clause that
// dispatches `==` through the language instead of using this index.
type Map struct {
	keys    []Value
	vals    []Value
	index   map[string]int // hostKey -> position in keys/vals, primitive keys only
	ivars   *Ivarsmap
}

// NewMap constructs an empty Map.
func NewMap() *Map {
	return &Map{index: make(map[string]int)}
}

func (*Map) Kind() Kind       { return KindMap }
func (*Map) TypeName() string { return "Map" }
func (m *Map) Truthy() bool   { return true }

func (m *Map) Ivars() Ivars {
	if m.ivars == nil {
		m.ivars = NewIvarsmap()
	}
	return m.ivars
}

// hostKey returns a canonical signature for primitive key kinds and ok=true,
// or ok=false when v's kind must be compared by host identity instead.
func hostKey(v Value) (string, bool) {
	switch k := v.(type) {
	case Integer:
		return "i:" + k.Inspect(), true
	case Float:
		return "f:" + k.Inspect(), true
	case Boolean:
		return "b:" + k.Inspect(), true
	case String:
		return "s:" + string(k), true
	case NilType:
		return "n:", true
	case *Symbol:
		return "y:" + k.name, true
	default:
		return "", false
	}
}

// findHostIndex returns the slot for key using whichever comparison
// strategy its kind supports, or -1 if absent.
func (m *Map) findHostIndex(key Value) int {
	if hk, ok := hostKey(key); ok {
		if i, ok := m.index[hk]; ok {
			return i
		}
		return -1
	}
	for i, k := range m.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Get returns the bound value for key, or (Nilv, false) if absent. Callers
// implementing spec.md §4.5's `[]` semantics should treat false as "return
// Nil", never as an error.
func (m *Map) Get(key Value) (Value, bool) {
	i := m.findHostIndex(key)
	if i < 0 {
		return Nilv, false
	}
	return m.vals[i], true
}

// Set binds key to val in place, appending to the insertion order if key is
// new.
func (m *Map) Set(key, val Value) {
	if i := m.findHostIndex(key); i >= 0 {
		m.vals[i] = val
		return
	}
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, val)
	if hk, ok := hostKey(key); ok {
		m.index[hk] = len(m.keys) - 1
	}
}

// Delete removes key if present, preserving the relative order of the
// remaining keys.
func (m *Map) Delete(key Value) bool {
	i := m.findHostIndex(key)
	if i < 0 {
		return false
	}
	removedKey := m.keys[i]
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	if hk, ok := hostKey(removedKey); ok {
		delete(m.index, hk)
	}
	for k, pos := range m.index {
		if pos > i {
			m.index[k] = pos - 1
		}
	}
	return true
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.keys) }

// Keys returns keys in insertion order. Callers must not mutate the
// returned slice.
func (m *Map) Keys() []Value { return m.keys }

// Vals returns values in the same order as Keys. Callers must not mutate
// the returned slice.
func (m *Map) Vals() []Value { return m.vals }

// Each invokes fn with (key, value) for every entry in insertion order.
func (m *Map) Each(fn func(k, v Value) error) error {
	for i := range m.keys {
		if err := fn(m.keys[i], m.vals[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *Map) Inspect() string {
	parts := make([]string, m.Len())
	for i := range m.keys {
		parts[i] = Inspect(m.keys[i]) + " => " + Inspect(m.vals[i])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
