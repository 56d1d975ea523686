package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JESURAJA7/Roger-Keys/internal/modules/catalog/domain"
)

const versionKey = "catalog:tracks:ver"

// RedisPageCache stores listing envelopes in Redis. Invalidation bumps a
// version counter so stale pages simply expire instead of being scanned for.
type RedisPageCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPageCache(rdb *redis.Client, ttl time.Duration) *RedisPageCache {
	return &RedisPageCache{rdb: rdb, ttl: ttl}
}

func (c *RedisPageCache) key(version int64, page, limit int) string {
	return fmt.Sprintf("catalog:tracks:v%d:p%d:l%d", version, page, limit)
}

func (c *RedisPageCache) version(ctx context.Context) (int64, error) {
	version, err := c.rdb.Get(ctx, versionKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return version, err
}

func (c *RedisPageCache) Get(ctx context.Context, page, limit int) (*domain.TrackPage, bool) {
	version, err := c.version(ctx)
	if err != nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, c.key(version, page, limit)).Bytes()
	if err != nil {
		return nil, false
	}

	var envelope domain.TrackPage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, false
	}
	return &envelope, true
}

func (c *RedisPageCache) Set(ctx context.Context, page, limit int, envelope *domain.TrackPage) {
	version, err := c.version(ctx)
	if err != nil {
		return
	}

	raw, err := json.Marshal(envelope)
	if err != nil {
		return
	}

	_ = c.rdb.Set(ctx, c.key(version, page, limit), raw, c.ttl).Err()
}

func (c *RedisPageCache) Invalidate(ctx context.Context) {
	_ = c.rdb.Incr(ctx, versionKey).Err()
}
