// Package kv provides the durable key-value backing for the entity store.
// Collections are persisted as opaque serialized blobs keyed by collection
// name; an absent key is distinct from an empty collection.
package kv

import (
	"context"
	"sync"
)

// Store is the contract the entity store persists through.
type Store interface {
	// Get returns the payload stored under key. The boolean is false when
	// the key has never been written.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores the payload under key, replacing any previous value.
	Set(ctx context.Context, key string, payload []byte) error
}

// Memory is an in-process Store used in development and tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory constructs an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	return cp, true, nil
}

func (m *Memory) Set(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	m.data[key] = cp
	return nil
}
