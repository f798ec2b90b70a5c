package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in Redis so they survive restarts and are
// shared across instances. Expiry slides on every Touch.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Create registers a new session and returns its ID
func (s *RedisStore) Create(ctx context.Context) (string, error) {
	id := uuid.New().String()
	if err := s.client.Set(ctx, redisKeyPrefix+id, "1", s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// Touch reports whether the session is live and slides its expiry
func (s *RedisStore) Touch(ctx context.Context, id string) (bool, error) {
	ok, err := s.client.Expire(ctx, redisKeyPrefix+id, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to touch session: %w", err)
	}
	return ok, nil
}

// Delete removes a session
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
