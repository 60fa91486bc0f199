// Package dedup provides best-effort suppression of redelivered
// notifications. The eventing platform delivers at least once and the store
// upsert is idempotent, so losing a claim is harmless; the point is to skip
// repeated enrichment calls for the same event.
package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ingest:event:"

type RedisDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDeduper(client *redis.Client, ttl time.Duration) *RedisDeduper {
	return &RedisDeduper{
		client: client,
		ttl:    ttl,
	}
}

// Claim marks the event ID as being processed. It returns false when another
// invocation already holds the claim.
func (d *RedisDeduper) Claim(ctx context.Context, eventID string) (bool, error) {
	claimed, err := d.client.SetNX(ctx, keyPrefix+eventID, 1, d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim event %q: %w", eventID, err)
	}

	return claimed, nil
}

// Release drops the claim so a platform retry of a failed invocation is not
// mistaken for a duplicate.
func (d *RedisDeduper) Release(ctx context.Context, eventID string) error {
	if err := d.client.Del(ctx, keyPrefix+eventID).Err(); err != nil {
		return fmt.Errorf("failed to release event %q: %w", eventID, err)
	}

	return nil
}
