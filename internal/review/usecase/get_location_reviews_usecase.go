package usecase

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/result"
	"github.com/allisson/places/internal/review/domain"
)

const listDefaultLimit = 20

// GetLocationReviewsInput selects reviews for one location. Page and Limit
// are optional; zero values get defaults.
type GetLocationReviewsInput struct {
	LocationID uuid.UUID
	Page       int
	Limit      int
}

// GetLocationReviewsUseCase lists a location's reviews page by page.
type GetLocationReviewsUseCase struct {
	reviewRepo ReviewRepository
}

// NewGetLocationReviewsUseCase creates a new GetLocationReviewsUseCase.
func NewGetLocationReviewsUseCase(reviewRepo ReviewRepository) *GetLocationReviewsUseCase {
	return &GetLocationReviewsUseCase{reviewRepo: reviewRepo}
}

// Execute is a thin pass-through to the repository. Repository failures map
// to FETCH_FAILED unless already classified.
func (uc *GetLocationReviewsUseCase) Execute(
	ctx context.Context,
	input GetLocationReviewsInput,
) result.Result[*domain.Page] {
	options := ListOptions{Page: input.Page, Limit: input.Limit}
	if options.Page < 1 {
		options.Page = 1
	}
	if options.Limit < 1 {
		options.Limit = listDefaultLimit
	}

	page, err := uc.reviewRepo.GetByLocationID(ctx, input.LocationID, options)
	if err != nil {
		return result.Fail[*domain.Page](
			apperrors.Coerce(err, apperrors.CodeFetchFailed, "Failed to fetch reviews"),
		)
	}

	return result.Ok(page)
}
