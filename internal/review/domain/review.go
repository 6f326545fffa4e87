// Package domain defines the review domain model.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/places/internal/errors"
)

// Rating bounds, inclusive.
const (
	RatingMin = 1
	RatingMax = 5
)

// Review is a user's rating and comment on a location, with optional photos
// and tags.
type Review struct {
	ID         uuid.UUID
	LocationID uuid.UUID
	UserID     uuid.UUID
	Rating     int
	Comment    string
	Photos     []string
	Tags       []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewReviewInput contains the parameters for building a review.
// Nil photo/tag slices default to empty.
type NewReviewInput struct {
	ID         uuid.UUID
	LocationID uuid.UUID
	UserID     uuid.UUID
	Rating     int
	Comment    string
	Photos     []string
	Tags       []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewReview builds a validated review. The rating must be within [1, 5] and
// the comment must not be blank.
func NewReview(input NewReviewInput) (*Review, error) {
	if input.Rating < RatingMin || input.Rating > RatingMax {
		return nil, apperrors.Validation(apperrors.CodeUnknown, "rating must be between 1 and 5")
	}
	if strings.TrimSpace(input.Comment) == "" {
		return nil, apperrors.Validation(apperrors.CodeUnknown, "comment must not be blank")
	}

	photos := input.Photos
	if photos == nil {
		photos = []string{}
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := input.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	return &Review{
		ID:         input.ID,
		LocationID: input.LocationID,
		UserID:     input.UserID,
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
		Photos:     photos,
		Tags:       tags,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}

// Page is a single page of reviews with total-count bookkeeping.
type Page struct {
	Data       []*Review
	TotalCount int
	HasMore    bool
}
