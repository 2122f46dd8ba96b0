package value

import (
	"fmt"

	"fortio.org/safecast"
)

// Range is a built-in value supplementing the distilled spec (see
// SPEC_FULL.md §4): an ordered integer range with an inclusive/exclusive
// end flag, exercised through the same native-clause registration path as
// List and Map.
type Range struct {
	From      Integer
	To        Integer
	Exclusive bool
	ivars     *Ivarsmap
}

// NewRange constructs a Range.
func NewRange(from, to Integer, exclusive bool) *Range {
	return &Range{From: from, To: to, Exclusive: exclusive}
}

func (*Range) Kind() Kind       { return KindRange }
func (*Range) TypeName() string { return "Range" }
func (r *Range) Truthy() bool   { return true }

func (r *Range) Ivars() Ivars {
	if r.ivars == nil {
		r.ivars = NewIvarsmap()
	}
	return r.ivars
}

// Includes reports whether n lies within the range.
func (r *Range) Includes(n Integer) bool {
	if n < r.From {
		return false
	}
	if r.Exclusive {
		return n < r.To
	}
	return n <= r.To
}

// Each invokes fn with every Integer in the range, in order, stopping early
// if fn returns an error.
func (r *Range) Each(fn func(Integer) error) error {
	end := r.To
	if !r.Exclusive {
		end++
	}
	for i := r.From; i < end; i++ {
		if err := fn(i); err != nil {
			return err
		}
	}
	return nil
}

// Len reports how many integers the range contains, checked via safecast
// since From/To are 64-bit Integer but a caller materializing the range
// (to_a) needs a host int to size the resulting slice.
func (r *Range) Len() (int, error) {
	end := r.To
	if !r.Exclusive {
		end++
	}
	if end <= r.From {
		return 0, nil
	}
	return safecast.Conv[int](int64(end - r.From))
}

func (r *Range) Inspect() string {
	op := "..."
	if !r.Exclusive {
		op = ".."
	}
	return fmt.Sprintf("%d%s%d", r.From, op, r.To)
}
