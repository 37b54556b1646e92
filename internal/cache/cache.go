// Package cache provides an optional Redis-backed cache for first-turn search
// responses. Cached entries hold the raw model text and extracted sources, not
// the rendered HTML, so a hit can still seed a live follow-up conversation.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"search-relay/internal/common/database"
	"search-relay/internal/common/logger"
	"search-relay/internal/common/metrics"
	"search-relay/internal/models"
)

// Entry is the cached payload for a search query.
type Entry struct {
	RawText string             `json:"rawText"`
	Sources []models.WebSource `json:"sources"`
}

// Cache stores search results keyed by normalized query.
type Cache interface {
	Get(ctx context.Context, query string) (*Entry, bool)
	Set(ctx context.Context, query string, entry *Entry)
}

// RedisCache implements Cache on a Redis client with a fixed TTL.
type RedisCache struct {
	client *database.RedisClient
	ttl    time.Duration
	log    logger.Logger
}

func NewRedisCache(client *database.RedisClient, ttl time.Duration, log logger.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, log: log}
}

func cacheKey(query string) string {
	return fmt.Sprintf("search:%s", strings.ToLower(strings.TrimSpace(query)))
}

func (c *RedisCache) Get(ctx context.Context, query string) (*Entry, bool) {
	raw, err := c.client.Get(ctx, cacheKey(query))
	if err != nil {
		metrics.RelayCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		c.log.Warn("Dropping undecodable cache entry", map[string]interface{}{
			"key":   cacheKey(query),
			"error": err.Error(),
		})
		_ = c.client.Del(ctx, cacheKey(query))
		metrics.RelayCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.RelayCacheLookups.WithLabelValues("hit").Inc()
	return &entry, true
}

func (c *RedisCache) Set(ctx context.Context, query string, entry *Entry) {
	payload, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(query), payload, c.ttl); err != nil {
		c.log.Warn("Failed to write cache entry", map[string]interface{}{
			"key":   cacheKey(query),
			"error": err.Error(),
		})
	}
}

// Disabled is the no-op Cache used when Redis is not configured.
type Disabled struct{}

func (Disabled) Get(ctx context.Context, query string) (*Entry, bool) { return nil, false }
func (Disabled) Set(ctx context.Context, query string, entry *Entry) {}
