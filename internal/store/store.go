package store

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// Store reads and writes whole JSON-array collections under a data directory.
// A collection named "users" lives at <dir>/users.json. Every read loads the
// entire file and every write replaces it; there is no partial update path.
//
// Load and Save are raw primitives: a caller doing Load → mutate → Save on its
// own is exposed to the lost-update race between concurrent writers. Update is
// the single-writer section callers should use for mutations.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dir string) *Store {
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// lockFor returns the in-process writer lock for one collection.
func (s *Store) lockFor(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.locks[name]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[name] = l
	return l
}

// Load returns every raw record in the named collection. A missing file is an
// empty collection, not an error. An unreadable or unparseable file is also
// treated as empty so a read can never fail the caller; the discarded payload
// is logged since the data is otherwise silently lost.
func (s *Store) Load(name string) []json.RawMessage {
	fl := flock.New(s.path(name) + ".lock")
	if err := fl.Lock(); err == nil {
		defer func() { _ = fl.Unlock() }()
	}

	b, err := os.ReadFile(s.path(name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[store] read %s failed, treating as empty: %v", name, err)
		}
		return nil
	}
	if len(b) == 0 {
		return nil
	}

	var recs []json.RawMessage
	if err := json.Unmarshal(b, &recs); err != nil {
		log.Printf("[store] collection %s is corrupt (%d bytes dropped): %v", name, len(b), err)
		return nil
	}
	return recs
}

// Save overwrites the named collection with exactly recs. The write goes to a
// temp file which is renamed over the target, keeping the previous content as
// a .bak, so the collection on disk is always a complete snapshot.
func (s *Store) Save(name string, recs []json.RawMessage) error {
	if recs == nil {
		recs = []json.RawMessage{}
	}
	b, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	fl := flock.New(s.path(name) + ".lock")
	if err := fl.Lock(); err == nil {
		defer func() { _ = fl.Unlock() }()
	}

	path := s.path(name)
	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}

// Update runs fn inside the collection's writer section: load, hand the
// records to fn, save what it returns. Concurrent Updates on one collection
// serialize, so the read-modify-write cannot lose a competing writer's change.
// fn returning an error aborts without writing.
func (s *Store) Update(name string, fn func(recs []json.RawMessage) ([]json.RawMessage, error)) error {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()

	recs, err := fn(s.Load(name))
	if err != nil {
		return err
	}
	return s.Save(name, recs)
}
