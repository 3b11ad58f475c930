package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Dhruv-958/TaskMaster-Backend/internal/config"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/ports"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/infrastructure/logger"
	"github.com/go-redis/redis/v8"
)

const leaderboardKeyPrefix = "leaderboard:"

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

// LeaderboardCache keeps recently computed leaderboards in Redis for a short
// TTL. A cache miss or any Redis failure falls through to the live query;
// the cache is never authoritative.
type LeaderboardCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *logger.Logger
}

func NewLeaderboardCache(rdb *redis.Client, ttl time.Duration, log *logger.Logger) *LeaderboardCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &LeaderboardCache{rdb: rdb, ttl: ttl, log: log}
}

// key scopes the cached board to the calendar month it was computed for.
func (c *LeaderboardCache) key(now time.Time) string {
	return leaderboardKeyPrefix + now.Format("200601")
}

func (c *LeaderboardCache) Get(ctx context.Context, now time.Time) ([]ports.LeaderboardEntry, bool) {
	data, err := c.rdb.Get(ctx, c.key(now)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnw("leaderboard_cache_get_failed", "error", err)
		}
		return nil, false
	}

	var entries []ports.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		c.log.Warnw("leaderboard_cache_decode_failed", "error", err)
		return nil, false
	}
	return entries, true
}

func (c *LeaderboardCache) Set(ctx context.Context, now time.Time, entries []ports.LeaderboardEntry) {
	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(now), data, c.ttl).Err(); err != nil {
		c.log.Warnw("leaderboard_cache_set_failed", "error", err)
	}
}
