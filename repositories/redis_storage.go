package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type cmdable interface {
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Del(context.Context, ...string) *redis.IntCmd
}

// RedisStorage stores each key as a plain redis string without expiry.
type RedisStorage struct {
	store cmdable
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{store: client}
}

func (s *RedisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.store.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(val), nil
}

func (s *RedisStorage) Set(ctx context.Context, key string, value []byte) error {
	return s.store.Set(ctx, key, string(value), 0).Err()
}

func (s *RedisStorage) Remove(ctx context.Context, key string) error {
	return s.store.Del(ctx, key).Err()
}
