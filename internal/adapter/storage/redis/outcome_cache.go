package redis

import (
	"context"
	"fmt"
	"time"

	"group-wager-ledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// OutcomeCache implements ports.OutcomeCache using Redis. It records
// settled source refs so a duplicate edit from the other observation
// channel can be discarded without a database round trip. Best-effort
// only: correctness never depends on a hit.
type OutcomeCache struct {
	client *goredis.Client
	prefix string
}

// NewOutcomeCache creates a new Redis-backed outcome cache.
func NewOutcomeCache(client *goredis.Client) *OutcomeCache {
	return &OutcomeCache{
		client: client,
		prefix: "settled:",
	}
}

// GetSettled retrieves the cached settlement for a source ref.
// Returns nil, nil if the key does not exist.
func (c *OutcomeCache) GetSettled(ctx context.Context, ref domain.SourceRef) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+ref.String()).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis settled get: %w", err)
	}
	return val, nil
}

// MarkSettled records a settlement payload for a source ref with TTL.
func (c *OutcomeCache) MarkSettled(ctx context.Context, ref domain.SourceRef, payload []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+ref.String(), payload, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis settled set: %w", err)
	}
	return nil
}
