package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/schedule"
	"github.com/BruksfildServices01/gym-backoffice/internal/metrics"
)

// StatsCache stores dashboard statistics per window pair. Cache failures
// never fail a request; they are logged and treated as misses.
type StatsCache interface {
	Get(ctx context.Context, q schedule.StatisticsQuery) (*schedule.Statistics, bool)
	Set(ctx context.Context, q schedule.StatisticsQuery, stats *schedule.Statistics)
	Invalidate(ctx context.Context)
}

const keyPrefix = "gym:stats:"

// Key includes the day so yesterday's overdue figure is never served today.
func Key(q schedule.StatisticsQuery) string {
	return fmt.Sprintf("%s%s:%d:%d", keyPrefix, q.Today.Format("2006-01-02"), q.WindowDays, q.UpcomingDays)
}

// ===============================
// Redis
// ===============================

type RedisStatsCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewRedisStatsCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *RedisStatsCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisStatsCache{rdb: rdb, ttl: ttl, log: log}
}

func (c *RedisStatsCache) Get(ctx context.Context, q schedule.StatisticsQuery) (*schedule.Statistics, bool) {
	raw, err := c.rdb.Get(ctx, Key(q)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordStatsCache("miss")
		return nil, false
	}
	if err != nil {
		metrics.RecordStatsCache("error")
		c.log.Warn("stats cache get failed", zap.Error(err))
		return nil, false
	}

	var stats schedule.Statistics
	if err := json.Unmarshal(raw, &stats); err != nil {
		metrics.RecordStatsCache("error")
		return nil, false
	}

	metrics.RecordStatsCache("hit")
	return &stats, true
}

func (c *RedisStatsCache) Set(ctx context.Context, q schedule.StatisticsQuery, stats *schedule.Statistics) {
	b, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, Key(q), b, c.ttl).Err(); err != nil {
		c.log.Warn("stats cache set failed", zap.Error(err))
	}
}

// Invalidate drops every cached window after a mutation.
func (c *RedisStatsCache) Invalidate(ctx context.Context) {
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("stats cache scan failed", zap.Error(err))
		return
	}

	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("stats cache invalidate failed", zap.Error(err))
	}
}

// ===============================
// Disabled
// ===============================

// NopStatsCache is used when no redis address is configured.
type NopStatsCache struct{}

func (NopStatsCache) Get(context.Context, schedule.StatisticsQuery) (*schedule.Statistics, bool) {
	return nil, false
}

func (NopStatsCache) Set(context.Context, schedule.StatisticsQuery, *schedule.Statistics) {}

func (NopStatsCache) Invalidate(context.Context) {}

var (
	_ StatsCache = (*RedisStatsCache)(nil)
	_ StatsCache = NopStatsCache{}
)
