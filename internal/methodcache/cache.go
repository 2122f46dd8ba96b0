// Package methodcache implements the method-table optimization spec.md §9
// suggests ("cache method lookups keyed by (type identity, method name) and
// invalidate on include/extend/method redefinition"): an in-process cache
// consulted by internal/dispatch before it walks a receiver's ancestor
// chain, plus an optional on-disk warm-start hint persisted between REPL
// sessions (SPEC_FULL.md §2), grounded on the teacher's DiskCache shape in
// internal/driver/dcache.go.
package methodcache

import (
	"sync"

	"myst/internal/functor"
)

// identity is whatever a dispatch chain is rooted at: a *container.Type for
// both instance dispatch (keyed by the instance's Type, since instance-level
// singleton scopes are checked separately and never cached) and static
// dispatch, or a *container.Module for module method calls. Any comparable
// pointer works as a map key; dispatch.Registry supplies the right one.
type identity any

// key identifies one cached lookup by dispatch root identity and method
// name.
type key struct {
	id   identity
	name string
}

// Cache is a process-lifetime cache from (dispatch root, method name) to
// the resolved Functor. It is invalidated wholesale on any include/extend/
// method (re)definition, the same conservative policy the teacher's
// DiskCache uses wholesale invalidation (DropAll) for format changes rather
// than a fine-grained per-entry scheme.
type Cache struct {
	mu      sync.RWMutex
	entries map[key]*functor.Functor
	stats   *Stats
}

// New constructs an empty Cache. stats may be nil to disable hit
// accounting.
func New(stats *Stats) *Cache {
	return &Cache{entries: make(map[key]*functor.Functor), stats: stats}
}

// Get returns the cached Functor for (id, name), if present. typeName is
// only used for Stats accounting and may be passed empty if stats tracking
// is disabled.
func (c *Cache) Get(id any, name, typeName string) (*functor.Functor, bool) {
	c.mu.RLock()
	f, ok := c.entries[key{id, name}]
	c.mu.RUnlock()
	if c.stats != nil {
		c.stats.record(typeName, name, ok)
	}
	return f, ok
}

// Put records the resolved Functor for (id, name).
func (c *Cache) Put(id any, name string, f *functor.Functor) {
	c.mu.Lock()
	c.entries[key{id, name}] = f
	c.mu.Unlock()
}

// Invalidate clears every cached entry. Called after any include, extend,
// or method (re)definition, since any of those can change which Functor a
// given (type, name) pair resolves to.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[key]*functor.Functor)
	c.mu.Unlock()
}

// Len reports the number of cached entries, for tests and diagnostics.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
