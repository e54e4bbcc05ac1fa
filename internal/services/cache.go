package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront-dashboard/internal/analytics"
)

const snapshotCacheKey = "dashboard:snapshot"

// SnapshotCache keeps the most recently fetched raw snapshot in Redis for a
// short TTL so rapid dashboard reloads don't hammer the backend. Only raw
// collections are cached — derived aggregates are always recomputed from the
// snapshot on every request.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache creates a snapshot cache backed by the given Redis client
func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached snapshot, or nil when none is cached.
func (c *SnapshotCache) Get(ctx context.Context) (*analytics.Snapshot, error) {
	val, err := c.client.Get(ctx, snapshotCacheKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot cache: %w", err)
	}

	var snap analytics.Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, fmt.Errorf("failed to decode cached snapshot: %w", err)
	}

	return &snap, nil
}

// Set stores the snapshot under the configured TTL.
func (c *SnapshotCache) Set(ctx context.Context, snap *analytics.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return c.client.Set(ctx, snapshotCacheKey, data, c.ttl).Err()
}

// Invalidate drops the cached snapshot.
func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, snapshotCacheKey).Err()
}
