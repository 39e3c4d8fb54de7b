package services_test

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

type MemStore struct {
	mu            sync.Mutex
	data          map[string][]byte
	simulateError error

	// failSetKey makes writes to exactly that key fail with simulateSetError.
	failSetKey       string
	simulateSetError error
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (m *MemStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	v, ok := m.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return v, nil
}

func (m *MemStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return m.simulateError
	}
	if m.failSetKey != "" && key == m.failSetKey {
		return m.simulateSetError
	}
	m.data[key] = value
	return nil
}

func (m *MemStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return m.simulateError
	}
	delete(m.data, key)
	return nil
}

func (m *MemStore) Ping(ctx context.Context) error {
	return m.simulateError
}

func (m *MemStore) raw(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.data[key])
}
