package repository

import (
	"context"
	"testing"
	"time"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/pricing"

	miniredis "github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRegionRedisCache_RoundTrip(t *testing.T) {
	_, client := newTestRedis(t)
	cache := NewRegionRedisCache(client, time.Hour)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, ok)

	want := pricing.Resolve("MY")
	require.NoError(t, cache.Set(ctx, "sess-1", want))

	got, ok, err := cache.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want.Tier, got.Tier)
	assert.Equal(t, want.Currency, got.Currency)
	assert.True(t, want.Team.Annual.Equal(got.Team.Annual))

	require.NoError(t, cache.Delete(ctx, "sess-1"))
	_, ok, err = cache.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegionRedisCache_Expiry(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRegionRedisCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "sess-1", pricing.Resolve("US")))
	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegionRedisCache_CorruptEntry(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRegionRedisCache(client, 0)

	require.NoError(t, mr.Set(regionKeyPrefix+"sess-1", "{not json"))

	_, ok, err := cache.Get(context.Background(), "sess-1")
	assert.Error(t, err)
	assert.False(t, ok)
}
