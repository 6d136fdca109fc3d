// Package suggestcache stores suggestion oracle results in Redis, keyed by
// the hash of the item set they were computed for.
package suggestcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/outcomes-backend/internal/config"
	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

const keyPrefix = "suggest:"

// Cache is a Redis-backed suggestion cache.
type Cache struct {
	rdb goredis.Cmdable
	ttl time.Duration
}

// New wraps an existing client.
func New(rdb goredis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Connect dials Redis and checks the connection. The caller owns the
// returned client and must close it.
func Connect(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// Get returns nil, nil on a miss.
func (c *Cache) Get(ctx context.Context, key string) (*domain.SuggestionResult, error) {
	raw, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("suggestcache get: %w", err)
	}

	var res domain.SuggestionResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("suggestcache decode: %w", err)
	}
	return &res, nil
}

// Set stores result with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, result *domain.SuggestionResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("suggestcache encode: %w", err)
	}
	if err := c.rdb.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("suggestcache set: %w", err)
	}
	return nil
}
