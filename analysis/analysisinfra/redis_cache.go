package analysisinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/skilllens/skilllens/analysis"
)

// RedisResultCache implements ResultCache using Redis
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisResultCache creates a new Redis-backed result cache
func NewRedisResultCache(client *redis.Client, ttl time.Duration) analysis.ResultCache {
	return &RedisResultCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns a cached report, or (nil, nil) on a miss
func (c *RedisResultCache) Get(ctx context.Context, key string) (*analysis.Report, error) {
	data, err := c.client.Get(ctx, cacheKey(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached analysis: %w", err)
	}

	var report analysis.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("unmarshal cached analysis: %w", err)
	}

	return &report, nil
}

// Set stores a report under the key with the configured TTL
func (c *RedisResultCache) Set(ctx context.Context, key string, report *analysis.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal analysis for cache: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache analysis: %w", err)
	}

	return nil
}

func cacheKey(key string) string {
	return "analysis:" + key
}
