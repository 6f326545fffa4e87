// Package storage provides the key-value store port with a redis-backed
// implementation for production and an in-memory one for development and
// tests. Every operation is Result-wrapped; failures carry STORAGE_ERROR.
package storage

import (
	"context"
	"encoding/json"
	"time"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/result"
)

// Store is a typed key-value store with optional per-key TTL.
// Get returns nil data when the key is absent; absence is not a failure.
type Store interface {
	Get(ctx context.Context, key string) result.Result[[]byte]
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) result.Result[bool]
	Remove(ctx context.Context, key string) result.Result[bool]
	Clear(ctx context.Context) result.Result[bool]
	Keys(ctx context.Context) result.Result[[]string]
}

// GetJSON reads a key and unmarshals it into T. Returns nil when the key is
// absent.
func GetJSON[T any](ctx context.Context, store Store, key string) result.Result[*T] {
	res := store.Get(ctx, key)
	if !res.Success() {
		return result.Fail[*T](res.Err())
	}
	if res.Data() == nil {
		return result.Ok[*T](nil)
	}

	var value T
	if err := json.Unmarshal(res.Data(), &value); err != nil {
		return result.Fail[*T](
			apperrors.Infrastructure(apperrors.CodeStorageError, err.Error()),
		)
	}
	return result.Ok(&value)
}

// SetJSON marshals value and stores it under key.
func SetJSON[T any](
	ctx context.Context,
	store Store,
	key string,
	value T,
	ttl time.Duration,
) result.Result[bool] {
	data, err := json.Marshal(value)
	if err != nil {
		return result.Fail[bool](
			apperrors.Infrastructure(apperrors.CodeStorageError, err.Error()),
		)
	}
	return store.Set(ctx, key, data, ttl)
}

func storageFailure[T any](err error) result.Result[T] {
	return result.Fail[T](
		apperrors.Coerce(err, apperrors.CodeStorageError, "storage operation failed"),
	)
}
