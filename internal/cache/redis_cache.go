// Package cache provides the Redis-backed stats memoization used by the
// stats service. Every computed result is keyed by habit, date and a
// per-habit completion version; bumping the version on toggle makes all
// stale entries unreachable without explicit deletion.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisStatsCache struct {
	rdb *redis.Client
}

func NewRedis(addr, password string, db int) *RedisStatsCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStatsCache{
		rdb: rdb,
	}
}

func (c *RedisStatsCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *RedisStatsCache) Close() error {
	return c.rdb.Close()
}

func (c *RedisStatsCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.New("cache get error: " + err.Error())
	}
	return val, nil
}

func (c *RedisStatsCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.New("cache set error: " + err.Error())
	}
	return nil
}

func (c *RedisStatsCache) Version(ctx context.Context, habitID uuid.UUID) (int64, error) {
	ver, err := c.rdb.Get(ctx, versionKey(habitID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errors.New("cache version error: " + err.Error())
	}
	return ver, nil
}

func (c *RedisStatsCache) Bump(ctx context.Context, habitID uuid.UUID) error {
	if err := c.rdb.Incr(ctx, versionKey(habitID)).Err(); err != nil {
		return errors.New("cache bump error: " + err.Error())
	}
	return nil
}

func versionKey(habitID uuid.UUID) string {
	return "habit_ver:" + habitID.String()
}
