package storage

import (
	"context"
	"sync"

	"github.com/rl1809/pinkstock/internal/port"
)

// MemoryAdapter is a process-local KeyValueStore. Nothing survives a restart.
type MemoryAdapter struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{values: make(map[string]string)}
}

func (m *MemoryAdapter) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[key]
	if !ok {
		return "", port.ErrKeyNotFound
	}
	return value, nil
}

func (m *MemoryAdapter) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Len returns the number of stored keys.
func (m *MemoryAdapter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.values)
}
