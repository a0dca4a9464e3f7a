package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis key prefix for per-entity trails.
const trailKeyPrefix = "audit:trail:"

// RedisStore keeps each entity's trail as an append-only list, which gives
// the chronological ordering contract for free under read-after-write
// consistency. Suited to deployments that already run Redis and don't need
// SQL over the trail.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func trailKey(entityType string, entityID int64) string {
	return fmt.Sprintf("%s%s:%d", trailKeyPrefix, entityType, entityID)
}

func (s *RedisStore) Append(ctx context.Context, record Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal audit record: %w", err)
	}
	if err := s.client.RPush(ctx, trailKey(record.EntityType, record.EntityID), payload).Err(); err != nil {
		return fmt.Errorf("rpush audit record: %w", err)
	}
	return nil
}

func (s *RedisStore) ListByEntity(ctx context.Context, entityType string, entityID int64) ([]Record, error) {
	payloads, err := s.client.LRange(ctx, trailKey(entityType, entityID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange audit records: %w", err)
	}
	records := make([]Record, 0, len(payloads))
	for _, payload := range payloads {
		var record Record
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			return nil, fmt.Errorf("unmarshal audit record: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}
