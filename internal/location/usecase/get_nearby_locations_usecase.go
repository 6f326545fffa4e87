package usecase

import (
	"context"

	"github.com/allisson/places/internal/location/domain"
)

const (
	defaultNearbyRadiusKm = 5.0
	defaultNearbyLimit    = 50
)

// GetNearbyLocationsInput contains the raw origin and optional radius/limit.
type GetNearbyLocationsInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Limit     int
}

// GetNearbyLocationsUseCase lists locations within a radius of an origin.
type GetNearbyLocationsUseCase struct {
	locationRepo LocationRepository
}

// NewGetNearbyLocationsUseCase creates a new GetNearbyLocationsUseCase.
func NewGetNearbyLocationsUseCase(locationRepo LocationRepository) *GetNearbyLocationsUseCase {
	return &GetNearbyLocationsUseCase{locationRepo: locationRepo}
}

// Execute builds the origin coordinates and queries the repository. This use
// case keeps the bare error contract instead of a Result: an out-of-range
// origin surfaces the coordinate validation error directly to the caller.
// Radius defaults to 5 km and limit to 50 when unset.
func (uc *GetNearbyLocationsUseCase) Execute(
	ctx context.Context,
	input GetNearbyLocationsInput,
) ([]*domain.Location, error) {
	origin, err := domain.NewCoordinates(input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	radiusKm := input.RadiusKm
	if radiusKm <= 0 {
		radiusKm = defaultNearbyRadiusKm
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultNearbyLimit
	}

	return uc.locationRepo.FindNearby(ctx, origin, radiusKm, limit)
}
