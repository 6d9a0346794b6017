package bureau

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"credlens/internal/platform/redis"
)

// RedisReportCache is the redis-backed ReportCache.
type RedisReportCache struct {
	client *redis.Client
}

// NewRedisReportCache wraps the shared redis client.
func NewRedisReportCache(client *redis.Client) *RedisReportCache {
	return &RedisReportCache{client: client}
}

func (c *RedisReportCache) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return raw, nil
}

func (c *RedisReportCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
