package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "logismart:profile:v1:"

// RedisStore keeps each profile blob under a single Redis key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore builds a store backed by Redis.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load fetches and decodes the blob for the owner.
func (s *RedisStore) Load(ctx context.Context, owner string) (Profile, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+owner).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

// Save serializes the whole profile and overwrites the stored blob.
func (s *RedisStore) Save(ctx context.Context, owner string, p Profile) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+owner, payload, 0).Err(); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
