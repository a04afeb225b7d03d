package draftstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wesion-bff/domain/model"
	"wesion-bff/domain/repository"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "draft:"

// RedisStore keeps parked drafts in Redis with a TTL, so an abandoned
// authorization round trip expires on its own.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) repository.IDraftStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, token string, draft model.Draft, ttl time.Duration) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+token, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	return nil
}

func (s *RedisStore) Take(ctx context.Context, token string) (*model.Draft, error) {
	raw, err := s.client.GetDel(ctx, keyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}
	var d model.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &d, nil
}
