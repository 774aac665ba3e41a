// Package storetest holds the behaviour every save store driver must share.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IconIdle_Go/internal/domain"
)

// KV is the driver surface under test
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Run exercises a driver. prefix keeps keys from colliding across runs.
func Run(t *testing.T, kv KV, prefix string) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := kv.Get(ctx, prefix+":missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		key := prefix + ":roundtrip"
		require.NoError(t, kv.Set(ctx, key, []byte(`{"completedGameIds":["hidden_wifi"]}`)))

		got, err := kv.Get(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `{"completedGameIds":["hidden_wifi"]}`, string(got))
	})

	t.Run("overwrite", func(t *testing.T) {
		key := prefix + ":overwrite"
		require.NoError(t, kv.Set(ctx, key, []byte(`{"playsToday":1,"lastResetTimestamp":10}`)))
		require.NoError(t, kv.Set(ctx, key, []byte(`{"playsToday":2,"lastResetTimestamp":10}`)))

		got, err := kv.Get(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `{"playsToday":2,"lastResetTimestamp":10}`, string(got))
	})

	t.Run("delete", func(t *testing.T) {
		key := prefix + ":delete"
		require.NoError(t, kv.Set(ctx, key, []byte(`{}`)))
		require.NoError(t, kv.Delete(ctx, key))
		require.NoError(t, kv.Delete(ctx, key), "deleting a missing key is not an error")

		_, err := kv.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
