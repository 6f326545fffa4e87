// Package usecase implements the review use cases: creating a review and
// listing a location's reviews.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/result"
	"github.com/allisson/places/internal/review/domain"
)

// ListOptions selects a page of reviews. Page is 1-based.
type ListOptions struct {
	Page  int
	Limit int
}

// ReviewRepository defines the interface for review persistence operations.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByLocationID(ctx context.Context, locationID uuid.UUID, options ListOptions) (*domain.Page, error)
}

// CreateReviewExecutor defines the interface for the review creation use case.
type CreateReviewExecutor interface {
	Execute(ctx context.Context, input CreateReviewInput) result.Result[*domain.Review]
}

// GetLocationReviewsExecutor defines the interface for the review listing use case.
type GetLocationReviewsExecutor interface {
	Execute(ctx context.Context, input GetLocationReviewsInput) result.Result[*domain.Page]
}
