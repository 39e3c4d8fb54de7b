package repository

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

var _ domain.KeyValueStore = (*CachedStore)(nil)

const DefaultCacheTTL = 30 * time.Minute

// CachedStore is a read-through Redis cache in front of another store.
// Writes go to the backing store first and then drop the cached copy.
type CachedStore struct {
	next  domain.KeyValueStore
	cache *redis.Client
	ttl   time.Duration
}

func NewCachedStore(next domain.KeyValueStore, cache *redis.Client, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

func (r *CachedStore) cacheKey(key string) string {
	return "cache:" + key
}

func (r *CachedStore) invalidate(ctx context.Context, key string) {
	if err := r.cache.Del(ctx, r.cacheKey(key)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate %s: %v", key, err)
	}
}

func (r *CachedStore) Get(ctx context.Context, key string) ([]byte, error) {
	ck := r.cacheKey(key)

	val, err := r.cache.Get(ctx, ck).Bytes()
	if err == nil {
		return val, nil
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	val, err = r.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if setErr := r.cache.Set(ctx, ck, val, r.ttl).Err(); setErr != nil {
		log.Printf("[CACHE] Redis set error: %v", setErr)
	}

	return val, nil
}

func (r *CachedStore) Set(ctx context.Context, key string, value []byte) error {
	if err := r.next.Set(ctx, key, value); err != nil {
		return err
	}
	r.invalidate(ctx, key)
	return nil
}

func (r *CachedStore) Delete(ctx context.Context, key string) error {
	if err := r.next.Delete(ctx, key); err != nil {
		return err
	}
	r.invalidate(ctx, key)
	return nil
}

func (r *CachedStore) Ping(ctx context.Context) error {
	return r.next.Ping(ctx)
}
