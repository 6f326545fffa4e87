package usecase

import (
	"context"
	"strings"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/location/domain"
	"github.com/allisson/places/internal/result"
)

const (
	searchQueryMinLength = 2
	searchDefaultLimit   = 20
)

// SearchLocationsInput contains the raw search parameters. Category, City,
// MinRating, Page, and Limit are optional; zero values are ignored.
type SearchLocationsInput struct {
	Query     string
	Category  string
	City      string
	MinRating float64
	Page      int
	Limit     int
}

// SearchLocationsUseCase searches locations by free text with optional
// filters and pagination.
type SearchLocationsUseCase struct {
	locationRepo LocationRepository
}

// NewSearchLocationsUseCase creates a new SearchLocationsUseCase.
func NewSearchLocationsUseCase(locationRepo LocationRepository) *SearchLocationsUseCase {
	return &SearchLocationsUseCase{locationRepo: locationRepo}
}

// Execute trims the query and requires at least two characters before the
// repository is consulted. A missing page defaults to 1, so a caller giving
// only a limit still gets the first page. Repository failures map to
// SEARCH_FAILED unless the repository already classified them.
func (uc *SearchLocationsUseCase) Execute(
	ctx context.Context,
	input SearchLocationsInput,
) result.Result[[]*domain.Location] {
	query := strings.TrimSpace(input.Query)
	if len(query) < searchQueryMinLength {
		return result.Fail[[]*domain.Location](apperrors.Validation(
			apperrors.CodeQueryTooShort, "Search query must be at least 2 characters",
		))
	}

	filters := SearchFilters{
		Category:  input.Category,
		City:      input.City,
		MinRating: input.MinRating,
	}
	pagination := Pagination{Page: input.Page, Limit: input.Limit}
	if pagination.Page < 1 {
		pagination.Page = 1
	}
	if pagination.Limit < 1 {
		pagination.Limit = searchDefaultLimit
	}

	locations, err := uc.locationRepo.Search(ctx, query, filters, pagination)
	if err != nil {
		return result.Fail[[]*domain.Location](
			apperrors.Coerce(err, apperrors.CodeSearchFailed, "Failed to search locations"),
		)
	}

	return result.Ok(locations)
}
