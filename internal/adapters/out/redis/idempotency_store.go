// Package redis stores submission results under idempotency keys.
package redis

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idempotency:"

type IdempotencyStore struct {
	c *redis.Client
}

func NewIdempotencyStore(addr string) *IdempotencyStore {
	return &IdempotencyStore{
		c: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

func (s *IdempotencyStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.c.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get")
	}
	return val, true, nil
}

// Put stores value only if key is unused and reports whether it did. The
// first writer wins; later writers should read the stored value instead.
func (s *IdempotencyStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	ok, err := s.c.SetNX(ctx, keyPrefix+key, value, ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis setnx")
	}
	return ok, nil
}

func (s *IdempotencyStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.Wrap(s.c.Set(ctx, keyPrefix+key, value, ttl).Err(), "redis set")
}

func (s *IdempotencyStore) Ping(ctx context.Context) error {
	return errors.Wrap(s.c.Ping(ctx).Err(), "redis ping")
}

func (s *IdempotencyStore) Close() error {
	return s.c.Close()
}
