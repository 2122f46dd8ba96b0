package value

import "testing"

func TestNilSingleton(t *testing.T) {
	if Nilv != (NilType{}) {
		t.Fatalf("Nilv should equal the zero NilType")
	}
	if Nilv.Truthy() {
		t.Fatalf("Nil must be non-truthy")
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Nilv, false},
		{Boolean(false), false},
		{Boolean(true), true},
		{Integer(0), true},
		{String(""), true},
		{NewList(), true},
	}
	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("Truthy(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestSymbolInterning(t *testing.T) {
	in := NewInterner()
	a := in.Intern("foo")
	b := in.Intern("foo")
	if a != b {
		t.Fatalf("expected same *Symbol for repeated Intern, got %p and %p", a, b)
	}
	if a.ID() != b.ID() {
		t.Fatalf("expected same id")
	}
	c := in.Intern("bar")
	if c.ID() == a.ID() {
		t.Fatalf("expected distinct ids for distinct names")
	}
	if c.ID() <= a.ID() {
		t.Fatalf("expected monotonically increasing ids, got a=%d c=%d", a.ID(), c.ID())
	}
}

func TestMapInsertionOrderAndGet(t *testing.T) {
	m := NewMap()
	in := NewInterner()
	a := in.Intern("a")
	b := in.Intern("b")
	m.Set(a, Integer(1))
	m.Set(b, Integer(2))
	if m.Len() != 2 {
		t.Fatalf("expected size 2, got %d", m.Len())
	}
	var seen []string
	_ = m.Each(func(k, v Value) error {
		seen = append(seen, k.(*Symbol).Name())
		return nil
	})
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Fatalf("expected insertion order [a b], got %v", seen)
	}
	if v, ok := m.Get(in.Intern("missing")); ok || v != Nilv {
		t.Fatalf("expected (Nilv, false) for missing key, got (%v, %v)", v, ok)
	}
}

func TestMapOverwritePreservesPosition(t *testing.T) {
	m := NewMap()
	m.Set(Integer(1), String("first"))
	m.Set(Integer(2), String("second"))
	m.Set(Integer(1), String("updated"))
	if m.Len() != 2 {
		t.Fatalf("expected overwrite to keep size 2, got %d", m.Len())
	}
	keys := m.Keys()
	if keys[0] != Value(Integer(1)) {
		t.Fatalf("expected key 1 to stay first, got %v", keys)
	}
	v, _ := m.Get(Integer(1))
	if v != Value(String("updated")) {
		t.Fatalf("expected updated value, got %v", v)
	}
}

func TestRangeEachInclusiveExclusive(t *testing.T) {
	var got []int64
	r := NewRange(1, 4, false)
	_ = r.Each(func(i Integer) error {
		got = append(got, int64(i))
		return nil
	})
	if len(got) != 4 {
		t.Fatalf("inclusive range 1..4 expected 4 elements, got %v", got)
	}

	got = nil
	r2 := NewRange(1, 4, true)
	_ = r2.Each(func(i Integer) error {
		got = append(got, int64(i))
		return nil
	})
	if len(got) != 3 {
		t.Fatalf("exclusive range 1...4 expected 3 elements, got %v", got)
	}
}
