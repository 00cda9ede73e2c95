// File: services/booking/cache.go
package booking

import (
	"context"
	"errors"
	"time"

	"villamar/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CalendarCache memoizes calendar-feed responses. Get returns (nil, nil) on a
// miss; Invalidate drops every key under the prefix.
type CalendarCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, prefix string) error
}

// RedisCalendarCache backs the calendar feed with Redis. The keyspace under
// the availability prefix is tiny (one key per queried month window), so
// invalidation scans it whole.
type RedisCalendarCache struct {
	Client *redis.Client
}

func NewRedisCalendarCache(client *redis.Client) *RedisCalendarCache {
	return &RedisCalendarCache{Client: client}
}

func (c *RedisCalendarCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return data, err
}

func (c *RedisCalendarCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.Client.Set(ctx, key, data, ttl).Err()
}

func (c *RedisCalendarCache) Invalidate(ctx context.Context, prefix string) error {
	iter := c.Client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// invalidateCalendar flushes cached feeds after a ledger change. Best-effort:
// entries expire on their own TTL anyway.
func (s *DefaultBookingService) invalidateCalendar(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx, utils.AvailabilityCachePrefix); err != nil {
		utils.GetLogger().Warn("failed to invalidate calendar cache", zap.Error(err))
	}
}
