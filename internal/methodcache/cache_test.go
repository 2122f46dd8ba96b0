package methodcache_test

import (
	"os"
	"path/filepath"
	"testing"

	"myst/internal/functor"
	"myst/internal/methodcache"
	"myst/internal/scope"
)

func TestCache_PutGetHitMiss(t *testing.T) {
	c := methodcache.New(nil)
	type root struct{}
	r := &root{}

	if _, ok := c.Get(r, "size", "List"); ok {
		t.Fatal("expected miss before any Put")
	}

	f := functor.New("size", scope.New(scope.KindRoot, nil), false)
	c.Put(r, "size", f)

	got, ok := c.Get(r, "size", "List")
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if got != f {
		t.Fatal("expected the same Functor back")
	}
	if _, ok := c.Get(r, "push", "List"); ok {
		t.Fatal("expected miss for a different method name on the same root")
	}
}

func TestCache_Invalidate(t *testing.T) {
	c := methodcache.New(nil)
	type root struct{}
	r := &root{}
	f := functor.New("each", scope.New(scope.KindRoot, nil), false)
	c.Put(r, "each", f)

	c.Invalidate()

	if c.Len() != 0 {
		t.Fatalf("expected empty cache after Invalidate, got %d entries", c.Len())
	}
	if _, ok := c.Get(r, "each", "List"); ok {
		t.Fatal("expected miss after Invalidate")
	}
}

func TestStats_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)

	s, err := methodcache.OpenStats("myst-test")
	if err != nil {
		t.Fatalf("OpenStats: %v", err)
	}
	c := methodcache.New(s)
	type root struct{}
	r := &root{}
	f := functor.New("to_s", scope.New(scope.KindRoot, nil), false)
	c.Put(r, "to_s", f)
	c.Get(r, "to_s", "String") // hit, recorded in s
	c.Get(r, "to_s", "String") // second hit

	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "myst-test", "methods.msgpack")); err != nil {
		t.Fatalf("expected persisted stats file: %v", err)
	}

	reopened, err := methodcache.OpenStats("myst-test")
	if err != nil {
		t.Fatalf("reopen OpenStats: %v", err)
	}
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := reopened.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "myst-test", "methods.msgpack")); !os.IsNotExist(err) {
		t.Fatalf("expected stats file removed after DropAll, stat err=%v", err)
	}
}
