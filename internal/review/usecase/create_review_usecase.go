package usecase

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/result"
	"github.com/allisson/places/internal/review/domain"
)

// CreateReviewInput contains the raw review fields. Photos and Tags are
// optional; nil slices default to empty.
type CreateReviewInput struct {
	LocationID uuid.UUID
	UserID     uuid.UUID
	Rating     int
	Comment    string
	Photos     []string
	Tags       []string
}

// CreateReviewUseCase records a user's review of a location.
type CreateReviewUseCase struct {
	reviewRepo ReviewRepository
}

// NewCreateReviewUseCase creates a new CreateReviewUseCase.
func NewCreateReviewUseCase(reviewRepo ReviewRepository) *CreateReviewUseCase {
	return &CreateReviewUseCase{reviewRepo: reviewRepo}
}

// Execute validates the review aggregate before the repository is invoked.
// Domain errors from the repository pass through unchanged; anything else
// maps to STORAGE_ERROR.
func (uc *CreateReviewUseCase) Execute(
	ctx context.Context,
	input CreateReviewInput,
) result.Result[*domain.Review] {
	review, err := domain.NewReview(domain.NewReviewInput{
		ID:         uuid.Must(uuid.NewV7()),
		LocationID: input.LocationID,
		UserID:     input.UserID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		Photos:     input.Photos,
		Tags:       input.Tags,
	})
	if err != nil {
		return result.Fail[*domain.Review](apperrors.AsDomainError(err))
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return result.Fail[*domain.Review](
			apperrors.Coerce(err, apperrors.CodeStorageError, "Failed to create review"),
		)
	}

	return result.Ok(review)
}
