package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const DefaultTTL = 24 * time.Hour

// Store records Idempotency-Key values seen on write requests.
type Store interface {
	// Claim reports true the first time a key is seen and false on every repeat within the TTL.
	Claim(ctx context.Context, key string) (bool, error)
	// Release forgets a claimed key so the request can be retried with it.
	Release(ctx context.Context, key string) error
}

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func redisKey(key string) string {
	return fmt.Sprintf("idempotent-key:%s", key)
}

func (s *RedisStore) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, redisKey(key), "exists", s.ttl).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (s *RedisStore) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, redisKey(key)).Err()
}
