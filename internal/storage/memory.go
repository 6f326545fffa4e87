package storage

import (
	"context"
	"sync"
	"time"

	"github.com/allisson/places/internal/result"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryStore is an in-process Store used in development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// Get returns the value stored under key, or nil data when absent or expired.
func (s *MemoryStore) Get(ctx context.Context, key string) result.Result[[]byte] {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || entry.expired(time.Now()) {
		return result.Ok[[]byte](nil)
	}
	return result.Ok(entry.value)
}

// Set stores value under key. A non-positive ttl means the key never expires.
func (s *MemoryStore) Set(
	ctx context.Context,
	key string,
	value []byte,
	ttl time.Duration,
) result.Result[bool] {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()

	return result.Ok(true)
}

// Remove deletes the key. Removing an absent key succeeds.
func (s *MemoryStore) Remove(ctx context.Context, key string) result.Result[bool] {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()

	return result.Ok(true)
}

// Clear removes every key.
func (s *MemoryStore) Clear(ctx context.Context) result.Result[bool] {
	s.mu.Lock()
	s.entries = make(map[string]memoryEntry)
	s.mu.Unlock()

	return result.Ok(true)
}

// Keys lists the live keys in no particular order.
func (s *MemoryStore) Keys(ctx context.Context) result.Result[[]string] {
	now := time.Now()

	s.mu.RLock()
	keys := make([]string, 0, len(s.entries))
	for key, entry := range s.entries {
		if !entry.expired(now) {
			keys = append(keys, key)
		}
	}
	s.mu.RUnlock()

	return result.Ok(keys)
}

var _ Store = (*MemoryStore)(nil)
