package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratyay/profile-service/internal/core/cache"
	"github.com/pratyay/profile-service/internal/domain/models"
	rediscache "github.com/pratyay/profile-service/internal/infrastructure/cache/redis"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, cache.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client, err := rediscache.NewClient(rediscache.Config{
		Host:       mr.Host(),
		Port:       mr.Port(),
		DefaultTTL: time.Minute,
		KeyPrefix:  "profile:",
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return mr, client
}

func TestNewClient_ConnectionFailure(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	host, port := mr.Host(), mr.Port()
	mr.Close()

	client, err := rediscache.NewClient(rediscache.Config{Host: host, Port: port})
	assert.ErrorIs(t, err, rediscache.ErrNotReady)
	assert.Nil(t, client)
}

func TestNewClient_RetriesUntilAttemptsExhausted(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	host, port := mr.Host(), mr.Port()
	mr.Close()

	start := time.Now()
	_, err = rediscache.NewClient(rediscache.Config{
		Host:          host,
		Port:          port,
		RetryAttempts: 3,
		RetryInterval: 20 * time.Millisecond,
	})
	assert.ErrorIs(t, err, rediscache.ErrNotReady)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestNewClient_FromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := rediscache.NewClient(rediscache.Config{
		URL:       "redis://" + mr.Addr() + "/0",
		KeyPrefix: "profile:",
	})
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.SetJSON(context.Background(), "k", "v", time.Minute))
	assert.True(t, mr.Exists("profile:k"))
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := rediscache.NewClient(rediscache.Config{URL: "http://not-redis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid redis url")
}

func TestCache_SetAndGetRaw(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	raw := client.GetCache()
	require.NoError(t, raw.Set(ctx, "raw-key", []byte("raw-value"), time.Minute))

	value, err := raw.Get(ctx, "raw-key")
	assert.NoError(t, err)
	assert.Equal(t, []byte("raw-value"), value)

	assert.True(t, mr.Exists("profile:raw-key"), "keys are stored with the configured prefix")
}

func TestCache_GetNotFound(t *testing.T) {
	_, client := setupMiniredis(t)

	value, err := client.GetCache().Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, value)
}

func TestCache_JSONRoundTrip(t *testing.T) {
	_, client := setupMiniredis(t)
	ctx := context.Background()

	posts := []models.BlogPost{
		{ID: "p1", Title: "First", Brief: "brief", URL: "https://example.com/p1", CoverImage: &models.BlogCoverImage{URL: "https://img/1"}},
		{ID: "p2", Title: "Second"},
	}
	require.NoError(t, client.SetJSON(ctx, "blogs:10", posts, 0))

	var cached []models.BlogPost
	found, err := client.GetJSON(ctx, "blogs:10", &cached)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, posts, cached)
}

func TestCache_GetJSONMissing(t *testing.T) {
	_, client := setupMiniredis(t)

	var cached []models.BlogPost
	found, err := client.GetJSON(context.Background(), "blogs:missing", &cached)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, cached)
}

func TestCache_GetJSONCorrupt(t *testing.T) {
	mr, client := setupMiniredis(t)
	require.NoError(t, mr.Set("profile:blogs:bad", "{not json"))

	var cached []models.BlogPost
	found, err := client.GetJSON(context.Background(), "blogs:bad", &cached)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestCache_Delete(t *testing.T) {
	_, client := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, client.SetJSON(ctx, "key", "value", time.Minute))

	deleted, err := client.Delete(ctx, "key")
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = client.Delete(ctx, "key")
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestCache_DefaultTTLApplied(t *testing.T) {
	mr, client := setupMiniredis(t)

	require.NoError(t, client.SetJSON(context.Background(), "ttl-key", 1, 0))
	assert.Equal(t, time.Minute, mr.TTL("profile:ttl-key"))
}

func TestCache_TTLExpiration(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, client.SetJSON(ctx, "expiring", "value", time.Second))

	mr.FastForward(2 * time.Second)

	var v string
	found, err := client.GetJSON(ctx, "expiring", &v)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestCache_Ping(t *testing.T) {
	_, client := setupMiniredis(t)
	assert.NoError(t, client.Ping(context.Background()))
}
