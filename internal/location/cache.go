package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"house-price/internal/types"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "geocode:"

// Cache memoizes resolved places by exact coordinate
type Cache interface {
	Get(ctx context.Context, coords types.Coords) (types.LocationInfo, bool, error)
	Set(ctx context.Context, coords types.Coords, info types.LocationInfo) error
}

func cacheKey(coords types.Coords) string {
	return cacheKeyPrefix + coords.Key()
}

// MemoryCache keeps entries for the life of the process
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]types.LocationInfo
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]types.LocationInfo)}
}

func (c *MemoryCache) Get(_ context.Context, coords types.Coords) (types.LocationInfo, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info, ok := c.entries[cacheKey(coords)]
	return info, ok, nil
}

func (c *MemoryCache) Set(_ context.Context, coords types.Coords, info types.LocationInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(coords)] = info
	return nil
}

// Len reports how many coordinates are cached
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// RedisCache shares resolved places between replicas
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache wraps client; a zero ttl stores entries without expiry.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, coords types.Coords) (types.LocationInfo, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(coords)).Bytes()
	if errors.Is(err, redis.Nil) {
		return types.LocationInfo{}, false, nil
	}
	if err != nil {
		return types.LocationInfo{}, false, fmt.Errorf("redis get: %w", err)
	}

	var info types.LocationInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return types.LocationInfo{}, false, fmt.Errorf("failed to decode cached location: %w", err)
	}
	return info, true, nil
}

func (c *RedisCache) Set(ctx context.Context, coords types.Coords, info types.LocationInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to encode location: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(coords), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Ping tests the Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
