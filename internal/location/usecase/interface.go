// Package usecase implements the location discovery use cases: text search,
// nearby lookup, detail retrieval, and location creation.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/location/domain"
	"github.com/allisson/places/internal/result"
)

// SearchFilters narrows a text search. Zero values mean "no filter".
type SearchFilters struct {
	Category  string
	City      string
	MinRating float64
}

// Pagination selects a page of search results. Page is 1-based.
type Pagination struct {
	Page  int
	Limit int
}

// LocationRepository defines the interface for location persistence and
// query operations. GetByID returns (nil, nil) when no location exists,
// which is distinct from an infrastructure failure.
type LocationRepository interface {
	Create(ctx context.Context, location *domain.Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	Search(
		ctx context.Context,
		query string,
		filters SearchFilters,
		pagination Pagination,
	) ([]*domain.Location, error)
	FindNearby(
		ctx context.Context,
		origin domain.Coordinates,
		radiusKm float64,
		limit int,
	) ([]*domain.Location, error)
}

// SearchLocationsExecutor defines the interface for the location search use case.
type SearchLocationsExecutor interface {
	Execute(ctx context.Context, input SearchLocationsInput) result.Result[[]*domain.Location]
}

// GetNearbyLocationsExecutor defines the interface for the nearby lookup use
// case. Unlike the other use cases it returns a bare error: an invalid
// origin propagates to the caller instead of being folded into a Result.
type GetNearbyLocationsExecutor interface {
	Execute(ctx context.Context, input GetNearbyLocationsInput) ([]*domain.Location, error)
}

// GetLocationDetailExecutor defines the interface for the detail retrieval use case.
type GetLocationDetailExecutor interface {
	Execute(ctx context.Context, id uuid.UUID) result.Result[*domain.Location]
}

// CreateLocationExecutor defines the interface for the location creation use case.
type CreateLocationExecutor interface {
	Execute(ctx context.Context, input CreateLocationInput) result.Result[*domain.Location]
}
