package usecase

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/location/domain"
	"github.com/allisson/places/internal/result"
)

// CreateLocationInput contains the raw fields for a new location.
type CreateLocationInput struct {
	Name        string
	Description string
	Category    string
	Latitude    float64
	Longitude   float64
	Address     string
	City        string
	Country     string
	ImageURL    string
	CreatedBy   uuid.UUID
}

// CreateLocationUseCase registers a new location.
type CreateLocationUseCase struct {
	locationRepo LocationRepository
}

// NewCreateLocationUseCase creates a new CreateLocationUseCase.
func NewCreateLocationUseCase(locationRepo LocationRepository) *CreateLocationUseCase {
	return &CreateLocationUseCase{locationRepo: locationRepo}
}

// Execute validates the coordinates and the aggregate before the repository
// is invoked. Repository failures map to STORAGE_ERROR unless already
// classified.
func (uc *CreateLocationUseCase) Execute(
	ctx context.Context,
	input CreateLocationInput,
) result.Result[*domain.Location] {
	coordinates, err := domain.NewCoordinates(input.Latitude, input.Longitude)
	if err != nil {
		return result.Fail[*domain.Location](apperrors.AsDomainError(err))
	}

	location, err := domain.NewLocation(domain.NewLocationInput{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Coordinates: coordinates,
		Address:     input.Address,
		City:        input.City,
		Country:     input.Country,
		ImageURL:    input.ImageURL,
		CreatedBy:   input.CreatedBy,
	})
	if err != nil {
		return result.Fail[*domain.Location](apperrors.AsDomainError(err))
	}

	if err := uc.locationRepo.Create(ctx, location); err != nil {
		return result.Fail[*domain.Location](
			apperrors.Coerce(err, apperrors.CodeStorageError, "Failed to create location"),
		)
	}

	return result.Ok(location)
}
