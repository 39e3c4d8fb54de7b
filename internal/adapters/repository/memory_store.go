package repository

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

var _ domain.KeyValueStore = (*InMemoryStore)(nil)

type InMemoryStore struct {
	store map[string][]byte

	mu sync.RWMutex
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		store: make(map[string][]byte),
	}
}

func (r *InMemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.store[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (r *InMemoryStore) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	r.store[key] = stored
	return nil
}

func (r *InMemoryStore) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, key)
	return nil
}

func (r *InMemoryStore) Ping(ctx context.Context) error {
	return nil
}
