// Package cache stores finished recaps in Redis so repeat lookups within
// the expiry window skip the Riot API and the model entirely.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key builds the cache key for a player's yearly recap.
func Key(puuid string, year int) string {
	return fmt.Sprintf("recap:%s:%d", puuid, year)
}

// RecapCache is a thin TTL cache over Redis. Values are opaque serialized
// recaps; the service owns the encoding.
type RecapCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New builds a cache that expires entries after ttl.
func New(client *redis.Client, ttl time.Duration) *RecapCache {
	return &RecapCache{client: client, ttl: ttl}
}

// Get returns the cached payload and whether it was present.
func (c *RecapCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}
	return payload, true, nil
}

// Set stores a payload under the cache TTL.
func (c *RecapCache) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}
