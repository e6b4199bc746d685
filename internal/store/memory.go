package store

import (
	"context"
	"sync"
)

// MemoryKV implements KV on a mutex-guarded map. It backs tests and the
// fallback path when the durable store cannot be opened.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
	err  error
}

var _ KV = (*MemoryKV)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// FailWith makes every subsequent operation return err. Passing nil restores
// normal behavior. Used to exercise storage-failure paths in tests.
func (m *MemoryKV) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data[key] = value
	return nil
}

func (m *MemoryKV) SetMany(_ context.Context, entries map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for k, v := range entries {
		m.data[k] = v
	}
	return nil
}

func (m *MemoryKV) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.data, key)
	return nil
}

func (m *MemoryKV) Close() error { return nil }
