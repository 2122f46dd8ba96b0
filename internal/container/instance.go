package container

import (
	"fmt"

	"myst/internal/scope"
	"myst/internal/value"
)

// Instance is an object of a user-defined Type. Its per-instance scope's
// parent is the type's instance scope, so an ivar read that misses locally
// naturally falls back to the class's instance bindings (spec.md §4.2).
type Instance struct {
	Type  *Type
	Scope *scope.Scope
}

// NewInstance constructs an Instance of t with a fresh, type-parented
// scope.
func NewInstance(t *Type) *Instance {
	return &Instance{Type: t, Scope: scope.New(scope.KindBlock, t.InstanceScope)}
}

func (*Instance) Kind() value.Kind     { return value.KindInstance }
func (i *Instance) TypeName() string   { return i.Type.Name }
func (i *Instance) Truthy() bool       { return true }
func (i *Instance) Ivars() value.Ivars { return i.Scope }
func (i *Instance) Inspect() string    { return fmt.Sprintf("#<%s>", i.Type.Name) }
