package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/store"
	"github.com/redis/go-redis/v9"
)

// Collection stores records as JSON entries of a Redis list, in insertion order.
// RPUSH makes every append atomic, so no client-side locking is needed.
type Collection[T store.Record] struct {
	client redis.UniversalClient
	key    string
}

func New[T store.Record](client redis.UniversalClient, key string) *Collection[T] {
	return &Collection[T]{client: client, key: key}
}

func (c *Collection[T]) ListAll(ctx context.Context) ([]T, error) {
	values, err := c.client.LRange(ctx, c.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", c.key, err)
	}

	records := make([]T, 0, len(values))
	for _, v := range values {
		var rec T
		if err = json.Unmarshal([]byte(v), &rec); err != nil {
			return nil, fmt.Errorf("decode %s entry: %w", c.key, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (T, error) {
	var zero T

	records, err := c.ListAll(ctx)
	if err != nil {
		return zero, err
	}

	for _, rec := range records {
		if rec.RecordID() == id {
			return rec, nil
		}
	}

	return zero, store.ErrNotFound
}

func (c *Collection[T]) Append(ctx context.Context, rec T) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s entry: %w", c.key, err)
	}

	if err = c.client.RPush(ctx, c.key, raw).Err(); err != nil {
		return fmt.Errorf("rpush %s: %w", c.key, err)
	}

	return nil
}
