package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"search-relay/internal/common/database"
	"search-relay/internal/common/logger"
	"search-relay/internal/models"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client, ttl, logger.NewTestLogger(t)), mr
}

func TestCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	entry := &Entry{
		RawText: "The answer is 42.",
		Sources: []models.WebSource{
			{Title: "Answers", URL: "https://a.example", Snippet: "the answer"},
		},
	}

	c.Set(ctx, "what is the answer", entry)

	got, ok := c.Get(ctx, "what is the answer")
	require.True(t, ok)
	assert.Equal(t, entry.RawText, got.RawText)
	assert.Equal(t, entry.Sources, got.Sources)
}

func TestCacheKeyNormalization(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "  Weather In Paris  ", &Entry{RawText: "sunny"})

	got, ok := c.Get(ctx, "weather in paris")
	require.True(t, ok)
	assert.Equal(t, "sunny", got.RawText)
}

func TestCacheMiss(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	_, ok := c.Get(context.Background(), "never stored")

	assert.False(t, ok)
}

func TestCacheEntryExpires(t *testing.T) {
	c, mr := newTestCache(t, time.Second)
	ctx := context.Background()

	c.Set(ctx, "ephemeral", &Entry{RawText: "soon gone"})
	mr.FastForward(2 * time.Second)

	_, ok := c.Get(ctx, "ephemeral")
	assert.False(t, ok)
}

func TestCacheDropsCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, mr.Set("search:broken", "not json"))

	_, ok := c.Get(ctx, "broken")
	assert.False(t, ok)
	assert.False(t, mr.Exists("search:broken"))
}

func TestDisabledCacheAlwaysMisses(t *testing.T) {
	var c Cache = Disabled{}
	ctx := context.Background()

	c.Set(ctx, "anything", &Entry{RawText: "ignored"})

	_, ok := c.Get(ctx, "anything")
	assert.False(t, ok)
}
