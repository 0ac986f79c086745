package news

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/manaracms/manara/internal/platform/constants"
)

// Cache serves the featured-news slice from Redis between recomputations.
//
// The cache is strictly best-effort: every failure falls through to the
// repository and is logged, never surfaced to the caller.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

func NewCache(client *redis.Client, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		logger: logger,
		ttl:    constants.FeaturedNewsCacheTTL,
	}
}

func (cache *Cache) GetFeatured(context context.Context) ([]*News, bool) {
	if cache == nil || cache.client == nil {
		return nil, false
	}

	raw, err := cache.client.Get(context, constants.RedisPrefixFeaturedNews).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.Warn("featured_news_cache_read_failed", slog.Any("error", err))
		}
		return nil, false
	}

	var items []*News
	if err := json.Unmarshal(raw, &items); err != nil {
		cache.logger.Warn("featured_news_cache_decode_failed", slog.Any("error", err))
		return nil, false
	}
	return items, true
}

func (cache *Cache) SetFeatured(context context.Context, items []*News) {
	if cache == nil || cache.client == nil {
		return
	}

	raw, err := json.Marshal(items)
	if err != nil {
		cache.logger.Warn("featured_news_cache_encode_failed", slog.Any("error", err))
		return
	}

	if err := cache.client.Set(context, constants.RedisPrefixFeaturedNews, raw, cache.ttl).Err(); err != nil {
		cache.logger.Warn("featured_news_cache_write_failed", slog.Any("error", err))
	}
}

// Invalidate drops the cached slice after any news mutation.
func (cache *Cache) Invalidate(context context.Context) {
	if cache == nil || cache.client == nil {
		return
	}

	if err := cache.client.Del(context, constants.RedisPrefixFeaturedNews).Err(); err != nil {
		cache.logger.Warn("featured_news_cache_invalidate_failed", slog.Any("error", err))
	}
}
