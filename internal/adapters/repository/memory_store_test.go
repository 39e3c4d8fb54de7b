package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	t.Run("Missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("Set, overwrite and delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", []byte(`{"a":1}`)))
		require.NoError(t, store.Set(ctx, "k", []byte(`{"a":2}`)))

		val, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":2}`, string(val))

		require.NoError(t, store.Delete(ctx, "k"))
		require.NoError(t, store.Delete(ctx, "k"), "deleting a missing key is not an error")

		_, err = store.Get(ctx, "k")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("Stored bytes are isolated from the caller", func(t *testing.T) {
		buf := []byte("abc")
		require.NoError(t, store.Set(ctx, "iso", buf))
		buf[0] = 'x'

		val, err := store.Get(ctx, "iso")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(val))
	})

	t.Run("Concurrent Access", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				key := fmt.Sprintf("concurrent_%d", id)
				assert.NoError(t, store.Set(ctx, key, []byte("v")))
				_, err := store.Get(ctx, key)
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()
	})
}
