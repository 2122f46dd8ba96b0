package ast

// Program is the root node: an ordered list of top-level expressions
// (spec.md §6: "program/expressions list").
type Program struct {
	Statements []Node
}

func (n *Program) Accept(v Visitor) (Result, error) { return v.VisitProgram(n) }

// IntegerLit is an integer literal.
type IntegerLit struct{ Value int64 }

func (n *IntegerLit) Accept(v Visitor) (Result, error) { return v.VisitIntegerLit(n) }

// FloatLit is a floating-point literal.
type FloatLit struct{ Value float64 }

func (n *FloatLit) Accept(v Visitor) (Result, error) { return v.VisitFloatLit(n) }

// BooleanLit is a true/false literal.
type BooleanLit struct{ Value bool }

func (n *BooleanLit) Accept(v Visitor) (Result, error) { return v.VisitBooleanLit(n) }

// StringLit is a string literal.
type StringLit struct{ Value string }

func (n *StringLit) Accept(v Visitor) (Result, error) { return v.VisitStringLit(n) }

// SymbolLit is a `:name` literal.
type SymbolLit struct{ Name string }

func (n *SymbolLit) Accept(v Visitor) (Result, error) { return v.VisitSymbolLit(n) }

// NilLit is the `nil` literal.
type NilLit struct{}

func (n *NilLit) Accept(v Visitor) (Result, error) { return v.VisitNilLit(n) }

// ListLit is a `[...]` list literal.
type ListLit struct{ Elements []Node }

func (n *ListLit) Accept(v Visitor) (Result, error) { return v.VisitListLit(n) }

// MapLit is a `{k => v, ...}` map literal. Keys and Vals are parallel
// slices preserving literal (and therefore insertion) order.
type MapLit struct {
	Keys []Node
	Vals []Node
}

func (n *MapLit) Accept(v Visitor) (Result, error) { return v.VisitMapLit(n) }

// Identifier is a bare name reference, resolved against the scope stack
// (and, failing that, whatever other namespace the driver consults — see
// spec.md §4.1).
type Identifier struct{ Name string }

func (n *Identifier) Accept(v Visitor) (Result, error) { return v.VisitIdentifier(n) }

// SelfExpr is the `this`/`self` reference.
type SelfExpr struct{}

func (n *SelfExpr) Accept(v Visitor) (Result, error) { return v.VisitSelfExpr(n) }

// IvarRef is an instance-variable reference, e.g. `@name`.
type IvarRef struct{ Name string }

func (n *IvarRef) Accept(v Visitor) (Result, error) { return v.VisitIvarRef(n) }

// Assign is a local-variable assignment.
type Assign struct {
	Name  string
	Value Node
}

func (n *Assign) Accept(v Visitor) (Result, error) { return v.VisitAssign(n) }

// IvarAssign is an instance-variable assignment, e.g. `@name = value`.
type IvarAssign struct {
	Name  string
	Value Node
}

func (n *IvarAssign) Accept(v Visitor) (Result, error) { return v.VisitIvarAssign(n) }

// BinaryOp is a binary operator application (`+`, `==`, `<=`, ...),
// desugared by the driver into a method call on Left with Right as the
// sole argument.
type BinaryOp struct {
	Op    string
	Left  Node
	Right Node
}

func (n *BinaryOp) Accept(v Visitor) (Result, error) { return v.VisitBinaryOp(n) }

// UnaryOp is a unary operator application (`-`, `!`).
type UnaryOp struct {
	Op      string
	Operand Node
}

func (n *UnaryOp) Accept(v Visitor) (Result, error) { return v.VisitUnaryOp(n) }

// Param is one formal parameter. SplatIndex on the owning ParamList (not
// here) marks which Param, if any, collects the argument tail.
type Param struct {
	Name string
}

// ParamList is a clause's formal parameter list: an ordered name list, an
// optional splat position, and an optional block parameter name
// (spec.md §4.3).
type ParamList struct {
	Params []Param
	// SplatIndex is the index into Params that collects trailing
	// positional arguments as a List, or -1 if there is no splat
	// parameter.
	SplatIndex int
	// BlockParam is the name the call's block binds to, or "" if the
	// clause does not take one.
	BlockParam string
}

// MethodCall is `receiver.name(args) { block }` (spec.md §6). Receiver is
// nil for an implicit-self call (`name(args)`).
type MethodCall struct {
	Receiver Node
	Name     string
	Args     []Node
	Block    *BlockLit
}

func (n *MethodCall) Accept(v Visitor) (Result, error) { return v.VisitMethodCall(n) }

// MethodDef defines a method: name, formal parameters, and body
// (spec.md §6).
type MethodDef struct {
	Name   string
	Params ParamList
	Body   []Node
}

func (n *MethodDef) Accept(v Visitor) (Result, error) { return v.VisitMethodDef(n) }

// BlockLit is an anonymous callable literal passed to a call as its block
// argument. It shares ParamList's shape with MethodDef since both become
// Functor clauses (spec.md §4.3), but a block's clause always closes over
// its defining lexical scope.
type BlockLit struct {
	Params ParamList
	Body   []Node
}

func (n *BlockLit) Accept(v Visitor) (Result, error) { return v.VisitBlockLit(n) }

// ModuleDecl declares a module: name and body (nested method/module/type
// definitions).
type ModuleDecl struct {
	Name string
	Body []Node
}

func (n *ModuleDecl) Accept(v Visitor) (Result, error) { return v.VisitModuleDecl(n) }

// TypeDecl declares a class: name, optional supertype name, and body
// (method definitions and include/extend directives).
type TypeDecl struct {
	Name      string
	Supertype string // "" if none
	Body      []Node
}

func (n *TypeDecl) Accept(v Visitor) (Result, error) { return v.VisitTypeDecl(n) }

// IncludeDirective mixes a module into a type's instance dispatch chain.
type IncludeDirective struct{ ModuleName string }

func (n *IncludeDirective) Accept(v Visitor) (Result, error) { return v.VisitIncludeDirective(n) }

// ExtendDirective mixes a module into a type's static dispatch chain.
type ExtendDirective struct{ ModuleName string }

func (n *ExtendDirective) Accept(v Visitor) (Result, error) { return v.VisitExtendDirective(n) }

// If is the `if cond then ... else ...` control-flow form.
type If struct {
	Cond Node
	Then []Node
	Else []Node // nil if there is no else branch
}

func (n *If) Accept(v Visitor) (Result, error) { return v.VisitIf(n) }

// While is the `while cond do ... end` control-flow form.
type While struct {
	Cond Node
	Body []Node
}

func (n *While) Accept(v Visitor) (Result, error) { return v.VisitWhile(n) }

// Rescue supplements the distilled spec (SPEC_FULL.md §4): it evaluates
// Body, and on a recovered runtime error or user `raise`, binds the error
// value to Param (if non-empty) and evaluates Handler instead.
type Rescue struct {
	Body    []Node
	Param   string
	Handler []Node
}

func (n *Rescue) Accept(v Visitor) (Result, error) { return v.VisitRescue(n) }

// Raise supplements the distilled spec: raises Value as a non-local
// failure, unwinding to the nearest enclosing Rescue.
type Raise struct {
	Value Node
}

func (n *Raise) Accept(v Visitor) (Result, error) { return v.VisitRaise(n) }
