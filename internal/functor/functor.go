// Package functor implements the named, multi-clause callable that unifies
// user-defined and native built-in operations (spec.md §4.3, component D).
package functor

import (
	"fmt"

	"myst/internal/ast"
	"myst/internal/scope"
	"myst/internal/value"
)

// NativeFunc is the signature a native clause implements (spec.md §4.3):
// given the receiver, positional arguments, and an optional block, produce
// a result or an error.
type NativeFunc func(receiver value.Value, args []value.Value, block *Functor) (value.Value, error)

// Clause is either a UserClause (an AST definition) or a NativeClause (an
// opaque host callable). Both expose Accepts so dispatch can pick among a
// Functor's clauses by arity (spec.md §4.4 step 3).
type Clause interface {
	// Accepts reports whether argc positional arguments can bind to this
	// clause: exactly len(params) when there is no splat, or at least
	// len(params)-1 when one of them is a splat.
	Accepts(argc int) bool
}

// UserClause is a user-defined clause: an AST definition's parameter list
// and body.
type UserClause struct {
	Params ast.ParamList
	Body   []ast.Node
}

func (c *UserClause) Accepts(argc int) bool {
	n := len(c.Params.Params)
	if c.Params.SplatIndex < 0 {
		return argc == n
	}
	return argc >= n-1
}

// NativeClause is a built-in operation implemented by the host and
// registered as a clause on a Functor (spec.md §4.6). MinArgs/MaxArgs bound
// the accepted argument count; a MaxArgs of -1 means no upper bound.
type NativeClause struct {
	Fn      NativeFunc
	MinArgs int
	MaxArgs int // -1 = unbounded
}

func (c *NativeClause) Accepts(argc int) bool {
	if argc < c.MinArgs {
		return false
	}
	if c.MaxArgs >= 0 && argc > c.MaxArgs {
		return false
	}
	return true
}

// Functor is a named callable holding one or more clauses (spec.md §4.3).
type Functor struct {
	Name string

	clauses []Clause

	// LexicalScope is the scope the Functor was defined in.
	LexicalScope *scope.Scope
	// Closure selects frame-creation strategy: true means a new
	// invocation's frame parents to LexicalScope (captures it); false
	// means a fresh, parentless frame (a proper call boundary).
	Closure bool
	// ClosedSelf, when HasClosedSelf is true, is the receiver bound at
	// capture time; it takes priority over the call site's explicit
	// receiver when resolving `this` inside the body (spec.md §4.3).
	ClosedSelf    value.Value
	HasClosedSelf bool

	ivars *value.Ivarsmap
}

// New constructs an empty Functor bound in lexicalScope; closure selects
// whether its invocation frames capture lexicalScope.
func New(name string, lexicalScope *scope.Scope, closure bool) *Functor {
	return &Functor{Name: name, LexicalScope: lexicalScope, Closure: closure}
}

// FindOrCreate returns the Functor already bound to name directly in s, or
// creates and binds a fresh one — the shared shape behind both native
// registration (spec.md §4.6) and a MethodDef reopening an existing method
// to append another clause (spec.md §4.3: "Adding a clause appends to the
// clauses list"). Looks up name locally only, never via s's parent chain,
// so redefining a method in a subtype's own scope never appends to the
// supertype's Functor by accident.
func FindOrCreate(s *scope.Scope, name string, closure bool) *Functor {
	if existing, ok := s.GetLocal(name); ok {
		if f, ok := existing.(*Functor); ok {
			return f
		}
	}
	f := New(name, s, closure)
	s.Define(name, f)
	return f
}

func (*Functor) Kind() value.Kind     { return value.KindFunctor }
func (f *Functor) TypeName() string   { return "Functor" }
func (f *Functor) Truthy() bool       { return true }
func (f *Functor) Inspect() string    { return fmt.Sprintf("#<Functor %s>", f.Name) }
func (f *Functor) Ivars() value.Ivars {
	if f.ivars == nil {
		f.ivars = value.NewIvarsmap()
	}
	return f.ivars
}

// AddClause appends a clause, per spec.md §4.3: "Adding a clause appends to
// the clauses list."
func (f *Functor) AddClause(c Clause) {
	f.clauses = append(f.clauses, c)
}

// Clauses returns the clause list in definition order. Callers must not
// mutate the returned slice.
func (f *Functor) Clauses() []Clause { return f.clauses }

// SelectClause implements spec.md §4.4 step 3's minimum requirement: the
// first clause (in definition order) whose arity accepts argc. Equal-
// specificity ties preserve definition order, per spec.md §9's
// "Multi-clause dispatch" note.
func (f *Functor) SelectClause(argc int) (Clause, bool) {
	for _, c := range f.clauses {
		if c.Accepts(argc) {
			return c, true
		}
	}
	return nil, false
}

// NewFrame implements spec.md §4.3's frame-creation rule: the callee
// constructs a fresh scope parented to LexicalScope when Closure is true,
// or a parentless scope otherwise.
func (f *Functor) NewFrame() *scope.Scope {
	if f.Closure {
		return scope.New(scope.KindClosure, f.LexicalScope)
	}
	return scope.New(scope.KindCall, nil)
}

// ResolveSelf implements spec.md §4.3's `this` resolution: ClosedSelf when
// present, otherwise the explicit receiver supplied at the call site.
func (f *Functor) ResolveSelf(callSiteReceiver value.Value) value.Value {
	if f.HasClosedSelf {
		return f.ClosedSelf
	}
	return callSiteReceiver
}

// BindArgs binds args into frame according to clause's parameter list:
// named parameters positionally, the trailing splat parameter (if any) as
// a List of the remainder, matching spec.md §4.4 step 4. It returns an
// arity-mismatch error if args cannot satisfy clause's parameter count.
func BindArgs(frame *scope.Scope, clause *UserClause, args []value.Value) error {
	params := clause.Params.Params
	splat := clause.Params.SplatIndex

	if splat < 0 {
		if len(args) != len(params) {
			return fmt.Errorf("arity mismatch: expected %d arguments, got %d", len(params), len(args))
		}
		for i, p := range params {
			frame.Define(p.Name, args[i])
		}
		return nil
	}

	if len(args) < len(params)-1 {
		return fmt.Errorf("arity mismatch: expected at least %d arguments, got %d", len(params)-1, len(args))
	}
	argIdx := 0
	for i, p := range params {
		if i == splat {
			tailLen := len(args) - (len(params) - 1)
			tail := make([]value.Value, tailLen)
			copy(tail, args[argIdx:argIdx+tailLen])
			frame.Define(p.Name, value.NewList(tail...))
			argIdx += tailLen
			continue
		}
		frame.Define(p.Name, args[argIdx])
		argIdx++
	}
	return nil
}
