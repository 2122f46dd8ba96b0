package methodcache

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// statsSchemaVersion is bumped whenever the on-disk Stats layout changes.
const statsSchemaVersion uint16 = 1

// entryKey identifies one counted lookup by type and method name. Unlike the
// in-memory Cache's key, this must survive a process restart, so it uses
// names rather than *container.Type pointer identity.
type entryKey struct {
	TypeName   string
	MethodName string
}

// statsPayload is the on-disk form of Stats, msgpack-encoded.
type statsPayload struct {
	Schema  uint16
	Entries map[entryKey]uint64
}

// Stats accumulates cache-hit counts per (type name, method name) across a
// run, and can persist them to disk and load them back in the next session.
// The counts are bookkeeping only: nothing reads them back into the
// in-memory Cache, which always fills lazily on first lookup.
type Stats struct {
	mu   sync.Mutex
	hits map[entryKey]uint64
	path string
}

// OpenStats opens (without yet loading) the stats file for app under the
// user's cache directory, following the same XDG_CACHE_HOME/~/.cache
// resolution the disk module cache uses.
func OpenStats(app string) (*Stats, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Stats{hits: make(map[entryKey]uint64), path: filepath.Join(dir, "methods.msgpack")}, nil
}

// record increments the hit counter for (typeName, methodName); misses are
// not counted.
func (s *Stats) record(typeName, methodName string, hit bool) {
	if s == nil || !hit {
		return
	}
	s.mu.Lock()
	s.hits[entryKey{typeName, methodName}]++
	s.mu.Unlock()
}

// Load reads previously persisted counts from disk, if any. A missing file
// is not an error; a schema mismatch discards the file's contents rather
// than failing the caller.
func (s *Stats) Load() error {
	if s == nil {
		return nil
	}
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	var payload statsPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return err
	}
	if payload.Schema != statsSchemaVersion {
		return nil
	}
	s.mu.Lock()
	for k, v := range payload.Entries {
		s.hits[k] = v
	}
	s.mu.Unlock()
	return nil
}

// Save persists the accumulated counts to disk with an atomic
// write-temp-then-rename, mirroring the disk module cache's Put.
func (s *Stats) Save() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	payload := statsPayload{Schema: statsSchemaVersion, Entries: make(map[entryKey]uint64, len(s.hits))}
	for k, v := range s.hits {
		payload.Entries[k] = v
	}
	s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "methods-*.mp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// DropAll discards the persisted stats file, renaming it aside before
// removal the way the disk module cache drops its whole directory.
func (s *Stats) DropAll() error {
	if s == nil {
		return nil
	}
	old := s.path + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(s.path, old); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := os.Remove(old); err != nil {
		return fmt.Errorf("methodcache: drop stale stats: %w", err)
	}
	return nil
}
