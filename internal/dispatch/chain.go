package dispatch

import (
	"fmt"

	"myst/internal/container"
	"myst/internal/scope"
	"myst/internal/value"
)

// Chain implements spec.md §4.4 step 1: determine the ordered list of
// scopes consulted to resolve a method name on recv.
func (r *Registry) Chain(recv value.Value) ([]*scope.Scope, error) {
	switch recv := recv.(type) {
	case *container.Instance:
		chain := []*scope.Scope{recv.Scope, recv.Type.InstanceScope}
		for _, anc := range recv.Type.Ancestors() {
			chain = append(chain, anc.Scope())
		}
		return chain, nil

	case *container.Type:
		chain := []*scope.Scope{recv.StaticScope}
		for _, anc := range recv.ExtendedAncestors() {
			chain = append(chain, anc.ScopeFor(true))
		}
		if bt, ok := r.TypeFor(value.KindType); ok {
			chain = append(chain, bt.InstanceScope)
		}
		return chain, nil

	case *container.Module:
		chain := []*scope.Scope{recv.Scope}
		if bt, ok := r.TypeFor(value.KindModule); ok {
			chain = append(chain, bt.InstanceScope)
		}
		return chain, nil

	default:
		t, ok := r.TypeFor(recv.Kind())
		if !ok {
			return nil, fmt.Errorf("no built-in type registered for %s", recv.Kind())
		}
		chain := []*scope.Scope{t.InstanceScope}
		for _, anc := range t.Ancestors() {
			chain = append(chain, anc.Scope())
		}
		return chain, nil
	}
}
