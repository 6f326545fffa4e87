package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/allisson/places/internal/result"
)

// RedisStore is a redis-backed Store. Every key is namespaced with a prefix
// so Clear and Keys only touch this application's keys.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisClient initializes a redis client.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// NewRedisStore creates a RedisStore on top of client. The prefix must be
// non-empty; "places:" is the conventional value.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) namespaced(key string) string {
	return s.prefix + key
}

// Get returns the value stored under key, or nil data when absent.
func (s *RedisStore) Get(ctx context.Context, key string) result.Result[[]byte] {
	value, err := s.client.Get(ctx, s.namespaced(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return result.Ok[[]byte](nil)
	}
	if err != nil {
		return storageFailure[[]byte](err)
	}
	return result.Ok(value)
}

// Set stores value under key. A non-positive ttl means the key never expires.
func (s *RedisStore) Set(
	ctx context.Context,
	key string,
	value []byte,
	ttl time.Duration,
) result.Result[bool] {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.namespaced(key), value, ttl).Err(); err != nil {
		return storageFailure[bool](err)
	}
	return result.Ok(true)
}

// Remove deletes the key. Removing an absent key succeeds.
func (s *RedisStore) Remove(ctx context.Context, key string) result.Result[bool] {
	if err := s.client.Del(ctx, s.namespaced(key)).Err(); err != nil {
		return storageFailure[bool](err)
	}
	return result.Ok(true)
}

// Clear removes every key under the store prefix using SCAN, so other
// tenants of the same redis database are untouched.
func (s *RedisStore) Clear(ctx context.Context) result.Result[bool] {
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return storageFailure[bool](err)
		}
	}
	if err := iter.Err(); err != nil {
		return storageFailure[bool](err)
	}
	return result.Ok(true)
}

// Keys lists the live keys under the store prefix, with the prefix stripped.
func (s *RedisStore) Keys(ctx context.Context) result.Result[[]string] {
	keys := []string{}
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val()[len(s.prefix):])
	}
	if err := iter.Err(); err != nil {
		return storageFailure[[]string](err)
	}
	return result.Ok(keys)
}

var _ Store = (*RedisStore)(nil)
