package value

import "strconv"

// Integer is a 64-bit signed primitive value.
type Integer int64

func (Integer) Kind() Kind        { return KindInteger }
func (Integer) TypeName() string  { return "Integer" }
func (i Integer) Truthy() bool    { return true }
func (i Integer) Inspect() string { return strconv.FormatInt(int64(i), 10) }

// Float is a 64-bit IEEE-754 primitive value.
type Float float64

func (Float) Kind() Kind        { return KindFloat }
func (Float) TypeName() string  { return "Float" }
func (f Float) Truthy() bool    { return true }
func (f Float) Inspect() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// Boolean is the true/false primitive value.
type Boolean bool

func (Boolean) Kind() Kind        { return KindBoolean }
func (Boolean) TypeName() string  { return "Boolean" }
func (b Boolean) Truthy() bool    { return bool(b) }
func (b Boolean) Inspect() string { return strconv.FormatBool(bool(b)) }

// String is an immutable Unicode text primitive value.
type String string

func (String) Kind() Kind        { return KindString }
func (String) TypeName() string  { return "String" }
func (s String) Truthy() bool    { return true }
func (s String) Inspect() string { return strconv.Quote(string(s)) }

// Nil is the singleton value type. Every Nil literal and every evaluation
// that "returns nothing" yields the package-level Nilv constant, so pointer
// identity (where it matters at the host level) and language-level equality
// coincide automatically — there is exactly one Nil (spec.md §3 invariant 1).
type NilType struct{}

func (NilType) Kind() Kind        { return KindNil }
func (NilType) TypeName() string  { return "Nil" }
func (NilType) Truthy() bool      { return false }
func (NilType) Inspect() string   { return "nil" }

// Nilv is the single logical Nil object.
var Nilv = NilType{}
