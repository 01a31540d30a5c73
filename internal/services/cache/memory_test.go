package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache(time.Minute)
	defer func() { _ = mc.Close() }()

	_, ok := mc.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, mc.Set(ctx, "key", []byte("value"), time.Minute))
	got, ok := mc.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache(time.Minute)
	defer func() { _ = mc.Close() }()

	require.NoError(t, mc.Set(ctx, "key", []byte("value"), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, ok := mc.Get(ctx, "key")
	assert.False(t, ok)
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache(time.Minute)
	defer func() { _ = mc.Close() }()

	require.NoError(t, mc.Set(ctx, "key", []byte("value"), time.Minute))
	require.NoError(t, mc.Delete(ctx, "key"))

	_, ok := mc.Get(ctx, "key")
	assert.False(t, ok)
}

func TestMemoryCacheCloseIsIdempotent(t *testing.T) {
	mc := NewMemoryCache(time.Minute)
	assert.NoError(t, mc.Close())
	assert.NoError(t, mc.Close())
}
