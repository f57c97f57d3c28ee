package kvstore

import (
	"context"
	"time"

	"cellar-market/internal/pkg/config"
	"cellar-market/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RedisOnceStore hands out keys that can be claimed exactly once until they
// expire. It backs the clearing tick lease and bid idempotency keys.
type RedisOnceStore struct {
	client *redis.Client
	prefix string
}

func NewRedisOnceStore(client *redis.Client) *RedisOnceStore {
	return &RedisOnceStore{
		client: client,
		prefix: "cellar:",
	}
}

func (s *RedisOnceStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.prefix+key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, errs.Wrapf(err, "redis setnx %q", key)
	}
	return ok, nil
}

// Release frees a key so a failed attempt can be retried under it.
func (s *RedisOnceStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errs.Wrapf(err, "redis del %q", key)
	}
	return nil
}

func (s *RedisOnceStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errs.Wrap(err, "redis ping")
	}
	return nil
}
