// Package testutil provides shared test doubles.
package testutil

import (
	"sync"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/store"
)

// MemStore is an in-memory store.Store with per-key failure injection.
type MemStore struct {
	mu    sync.Mutex
	slots map[string][]byte

	// LoadErr and SaveErr, when set for a key, are returned instead of
	// touching the slot.
	LoadErr map[string]error
	SaveErr map[string]error

	// Saves counts Save calls per key, so tests can assert that a mutation
	// persisted its collection exactly once.
	Saves map[string]int
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		slots:   make(map[string][]byte),
		LoadErr: make(map[string]error),
		SaveErr: make(map[string]error),
		Saves:   make(map[string]int),
	}
}

func (m *MemStore) Load(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.LoadErr[key]; err != nil {
		return nil, err
	}
	raw, ok := m.slots[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (m *MemStore) Save(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Saves[key]++
	if err := m.SaveErr[key]; err != nil {
		return err
	}
	raw := make([]byte, len(value))
	copy(raw, value)
	m.slots[key] = raw
	return nil
}

func (m *MemStore) Close() error { return nil }

// Raw returns the stored bytes of a slot, or nil.
func (m *MemStore) Raw(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[key]
}
