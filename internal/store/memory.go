package store

import (
	"context"
	"fmt"
	"maps"
)

// MemoryStore is a map-backed Store. It is not safe for concurrent use.
type MemoryStore struct {
	data     map[string]string
	failGet  map[string]struct{}
	failSet  map[string]struct{}
	setCalls int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:    make(map[string]string),
		failGet: make(map[string]struct{}),
		failSet: make(map[string]struct{}),
	}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	if _, ok := m.failGet[key]; ok {
		return "", fmt.Errorf("%w: injected read fault on kv[%s]", ErrPersistence, key)
	}
	v, ok := m.data[key]
	if !ok {
		return "", fmt.Errorf("kv[%s]: %w", key, ErrNotFound)
	}
	return v, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value string) error {
	m.setCalls++
	if _, ok := m.failSet[key]; ok {
		return fmt.Errorf("%w: injected write fault on kv[%s]", ErrPersistence, key)
	}
	m.data[key] = value
	return nil
}

// Delete removes key. Like SQLiteStore.Delete it is outside Store.
func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// List returns a copy of every stored pair. Like SQLiteStore.List it is
// outside Store.
func (m *MemoryStore) List(ctx context.Context) (map[string]string, error) {
	return maps.Clone(m.data), nil
}

// FailGet makes subsequent reads of key fail with ErrPersistence.
func (m *MemoryStore) FailGet(key string) { m.failGet[key] = struct{}{} }

// FailSet makes subsequent writes of key fail with ErrPersistence.
func (m *MemoryStore) FailSet(key string) { m.failSet[key] = struct{}{} }

// Heal clears all injected faults.
func (m *MemoryStore) Heal() {
	clear(m.failGet)
	clear(m.failSet)
}

// SetCalls reports how many times Set has been called, including failed calls.
func (m *MemoryStore) SetCalls() int { return m.setCalls }
