// Package dispatch looks up a named operation on a receiver via its
// ancestor chain and invokes the selected clause (spec.md §4.4,
// component E).
package dispatch

import (
	"myst/internal/container"
	"myst/internal/methodcache"
	"myst/internal/value"
)

// Registry maps each primitive Kind to the built-in Type object registered
// for it (spec.md §4.6), so a primitive receiver's dispatch chain can
// consult that type's instance scope like any other receiver's.
type Registry struct {
	Builtins map[value.Kind]*container.Type

	// MethodCache, if set, short-circuits Lookup's ancestor-chain walk for
	// repeat (receiver type, method name) pairs. Left nil, Lookup behaves
	// exactly as if no cache existed. A fresh include/extend/method
	// definition must call InvalidateMethodCache, since any of those can
	// change what a cached pair resolves to.
	MethodCache *methodcache.Cache
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{Builtins: make(map[value.Kind]*container.Type)}
}

// InvalidateMethodCache drops every cached lookup. Safe to call even when
// no MethodCache is installed.
func (r *Registry) InvalidateMethodCache() {
	if r.MethodCache != nil {
		r.MethodCache.Invalidate()
	}
}

// cacheIdentity returns the dispatch-root identity Lookup should key its
// cache on for recv, mirroring Chain's own switch over receiver kinds. The
// bool is false for a receiver Chain itself would reject (no built-in type
// registered), in which case the caller should skip caching and let Chain
// produce the error.
func (r *Registry) cacheIdentity(recv value.Value) (id any, typeName string, ok bool) {
	switch recv := recv.(type) {
	case *container.Instance:
		return recv.Type, recv.Type.Name, true
	case *container.Type:
		return recv, recv.Name, true
	case *container.Module:
		return recv, recv.Name, true
	default:
		t, found := r.TypeFor(recv.Kind())
		if !found {
			return nil, "", false
		}
		return t, t.Name, true
	}
}

// Register associates kind with t. internal/prelude calls this once per
// built-in type at interpreter construction time.
func (r *Registry) Register(kind value.Kind, t *container.Type) {
	r.Builtins[kind] = t
}

// TypeFor returns the built-in Type registered for kind, if any.
func (r *Registry) TypeFor(kind value.Kind) (*container.Type, bool) {
	t, ok := r.Builtins[kind]
	return t, ok
}
