package usecase

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/location/domain"
	"github.com/allisson/places/internal/result"
)

// GetLocationDetailUseCase retrieves a single location by its ID.
type GetLocationDetailUseCase struct {
	locationRepo LocationRepository
}

// NewGetLocationDetailUseCase creates a new GetLocationDetailUseCase.
func NewGetLocationDetailUseCase(locationRepo LocationRepository) *GetLocationDetailUseCase {
	return &GetLocationDetailUseCase{locationRepo: locationRepo}
}

// Execute distinguishes a missing location (NOT_FOUND) from a repository
// failure (FETCH_FAILED).
func (uc *GetLocationDetailUseCase) Execute(
	ctx context.Context,
	id uuid.UUID,
) result.Result[*domain.Location] {
	location, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return result.Fail[*domain.Location](
			apperrors.Coerce(err, apperrors.CodeFetchFailed, "Failed to fetch location"),
		)
	}
	if location == nil {
		return result.Fail[*domain.Location](domain.ErrLocationNotFound)
	}

	return result.Ok(location)
}
