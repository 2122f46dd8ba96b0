// Package interp implements the driver (component G): the ast.Visitor that
// walks a parsed program and evaluates it against the value/scope/container/
// functor/dispatch/prelude machinery (spec.md §6).
package interp

import (
	"fmt"

	"myst/internal/ast"
	"myst/internal/dispatch"
	"myst/internal/functor"
	"myst/internal/methodcache"
	"myst/internal/prelude"
	"myst/internal/rterr"
	"myst/internal/scope"
	"myst/internal/trace"
	"myst/internal/value"
)

// Interpreter owns the runtime state for one program: the scope stack, the
// dispatch registry, the built-in types, and the current-self stack used to
// resolve `this`/`self` and instance-variable references.
type Interpreter struct {
	Table   *scope.Table
	Reg     *dispatch.Registry
	Types   *prelude.Types
	Symbols *value.Interner
	env     *prelude.Env

	selfStack []value.Value

	Tracer trace.Tracer

	// curSpanID is the span ID of the top-level statement currently
	// executing (set each iteration of Run's loop), used as the parent for
	// the per-dispatch ScopeModule spans VisitMethodCall opens, so a trace
	// view nests method dispatch under the statement that triggered it.
	curSpanID uint64

	// stats backs Reg.MethodCache's hit accounting and, when WarmStart is
	// called, is persisted across sessions as a cache-warming hint. Nil
	// until WarmStart is called, in which case Reg.MethodCache still
	// caches in-process but with no stats bookkeeping.
	stats *methodcache.Stats
}

// New constructs an Interpreter with a fresh kernel scope, registry, and
// prelude installation.
func New() *Interpreter {
	table := scope.NewTable()
	reg := dispatch.NewRegistry()
	symbols := value.NewInterner()
	env := &prelude.Env{Reg: reg, Symbols: symbols}

	it := &Interpreter{
		Table:   table,
		Reg:     reg,
		Symbols: symbols,
		env:     env,
		Tracer:  trace.Nop,
	}
	env.Runner = it

	reg.MethodCache = methodcache.New(nil)

	it.Types = prelude.Install(table.Root(), env)
	it.selfStack = []value.Value{value.Nilv}
	return it
}

// WarmStart enables persisted method-cache accounting under app's cache
// directory (spec.md §9's caching suggestion) and loads any counts left
// over from a previous session. It does not pre-populate Reg.MethodCache
// itself — the cache still fills lazily on first lookup — it only gives
// the Interpreter something to Shutdown into on exit.
func (it *Interpreter) WarmStart(app string) error {
	stats, err := methodcache.OpenStats(app)
	if err != nil {
		return err
	}
	if err := stats.Load(); err != nil {
		return err
	}
	it.stats = stats
	it.Reg.MethodCache = methodcache.New(stats)
	return nil
}

// Shutdown persists accumulated method-cache stats, if WarmStart was
// called. A no-op otherwise.
func (it *Interpreter) Shutdown() error {
	if it.stats == nil {
		return nil
	}
	return it.stats.Save()
}

// dispatchSpan wraps a single method dispatch (ancestor-chain lookup plus
// invocation, spec.md §4.4) in a ScopeModule trace span nested under the
// current top-level statement's span, the same way Run's own ScopePass
// spans nest under its ScopeDriver span.
func (it *Interpreter) dispatchSpan(name string, fn func() (ast.Result, error)) (ast.Result, error) {
	span := trace.Begin(it.Tracer, trace.ScopeModule, "dispatch:"+name, it.curSpanID)
	res, err := fn()
	span.End(fmt.Sprintf("err=%v", err))
	return res, err
}

func (it *Interpreter) self() value.Value {
	return it.selfStack[len(it.selfStack)-1]
}

func (it *Interpreter) pushSelf(v value.Value) {
	it.selfStack = append(it.selfStack, v)
}

func (it *Interpreter) popSelf() {
	it.selfStack = it.selfStack[:len(it.selfStack)-1]
}

// Run evaluates program against the kernel scope, converting any recovered
// *rterr.Error into a returned Go error (SPEC_FULL.md §1.1).
func (it *Interpreter) Run(program *ast.Program) (result value.Value, err error) {
	span := trace.Begin(it.Tracer, trace.ScopeDriver, "interp.Run", 0)
	defer func() {
		var rerr error
		rterr.Recover(&rerr)
		if rerr != nil {
			err = rerr
		}
		span.End(fmt.Sprintf("err=%v", err))
	}()

	var last value.Value = value.Nilv
	for i, n := range program.Statements {
		stmtSpan := trace.Begin(it.Tracer, trace.ScopePass, fmt.Sprintf("stmt[%d]", i), span.ID())
		it.curSpanID = stmtSpan.ID()
		res, evalErr := n.Accept(it)
		if evalErr != nil {
			stmtSpan.End(fmt.Sprintf("err=%v", evalErr))
			return nil, evalErr
		}
		stmtSpan.End("ok")
		last = res.(value.Value)
	}
	return last, nil
}

// evalStatements evaluates each node in order in the current top scope,
// returning the last result (value.Nilv if stmts is empty).
func (it *Interpreter) evalStatements(stmts []ast.Node) (value.Value, error) {
	var last value.Value = value.Nilv
	for _, n := range stmts {
		res, err := n.Accept(it)
		if err != nil {
			return nil, err
		}
		last = res.(value.Value)
	}
	return last, nil
}

// RunBody implements dispatch.BodyRunner: it pushes self and frame as the
// active self/scope for the duration of the clause body.
func (it *Interpreter) RunBody(clause *functor.UserClause, frame *scope.Scope, self value.Value) (value.Value, error) {
	it.pushSelf(self)
	it.Table.Push(frame)
	defer func() {
		it.Table.Pop()
		it.popSelf()
	}()
	return it.evalStatements(clause.Body)
}

func typeMisuse(format string, args ...any) error {
	return rterr.New(rterr.KindTypeMisuse, format, args...)
}
