package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

// getItem decodes the JSON value under key on top of def, so fields missing
// from a stored object keep their defaults. A missing key, a JSON null, a read
// error or a malformed value all yield def; only the last two are logged.
func getItem[T any](ctx context.Context, store domain.KeyValueStore, key string, def T) T {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.Printf("[STORE] Read failed for %s, using default: %v", key, err)
		}
		return def
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return def
	}

	value := def
	if err := json.Unmarshal(raw, &value); err != nil {
		log.Printf("[STORE] Malformed value under %s, using default: %v", key, err)
		return def
	}
	return value
}

func setItem(ctx context.Context, store domain.KeyValueStore, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}
