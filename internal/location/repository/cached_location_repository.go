package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/location/domain"
	"github.com/allisson/places/internal/location/usecase"
	"github.com/allisson/places/internal/storage"
)

const locationCacheKeyPrefix = "location:"

// CachedLocationRepository decorates a location repository with a key-value
// cache for detail lookups. Cache failures are swallowed: a broken cache
// degrades to the underlying repository, never to an error.
type CachedLocationRepository struct {
	next  usecase.LocationRepository
	store storage.Store
	ttl   time.Duration
}

// NewCachedLocationRepository creates a new cache decorator around next.
func NewCachedLocationRepository(
	next usecase.LocationRepository,
	store storage.Store,
	ttl time.Duration,
) *CachedLocationRepository {
	return &CachedLocationRepository{next: next, store: store, ttl: ttl}
}

// Create inserts through the underlying repository and drops any stale
// cache entry for the ID.
func (c *CachedLocationRepository) Create(ctx context.Context, location *domain.Location) error {
	if err := c.next.Create(ctx, location); err != nil {
		return err
	}
	c.store.Remove(ctx, locationCacheKey(location.ID))
	return nil
}

// GetByID serves from the cache when possible, falling back to the
// underlying repository and populating the cache on a miss.
func (c *CachedLocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	key := locationCacheKey(id)

	cached := storage.GetJSON[domain.Location](ctx, c.store, key)
	if cached.Success() && cached.Data() != nil {
		return cached.Data(), nil
	}

	location, err := c.next.GetByID(ctx, id)
	if err != nil || location == nil {
		return location, err
	}

	storage.SetJSON(ctx, c.store, key, location, c.ttl)
	return location, nil
}

// Search delegates to the underlying repository. Result sets are not cached.
func (c *CachedLocationRepository) Search(
	ctx context.Context,
	query string,
	filters usecase.SearchFilters,
	pagination usecase.Pagination,
) ([]*domain.Location, error) {
	return c.next.Search(ctx, query, filters, pagination)
}

// FindNearby delegates to the underlying repository. Result sets are not cached.
func (c *CachedLocationRepository) FindNearby(
	ctx context.Context,
	origin domain.Coordinates,
	radiusKm float64,
	limit int,
) ([]*domain.Location, error) {
	return c.next.FindNearby(ctx, origin, radiusKm, limit)
}

func locationCacheKey(id uuid.UUID) string {
	return locationCacheKeyPrefix + id.String()
}
