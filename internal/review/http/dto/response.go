package dto

import (
	"time"

	reviewDomain "github.com/allisson/places/internal/review/domain"
)

// ReviewResponse represents a review in API responses.
type ReviewResponse struct {
	ID         string    `json:"id"`
	LocationID string    `json:"location_id"`
	UserID     string    `json:"user_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	Photos     []string  `json:"photos"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ListReviewsResponse wraps a page of reviews with pagination metadata.
type ListReviewsResponse struct {
	Data       []ReviewResponse `json:"data"`
	TotalCount int              `json:"total_count"`
	HasMore    bool             `json:"has_more"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

// MapReviewToResponse converts a domain review to an API response.
func MapReviewToResponse(review *reviewDomain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID.String(),
		LocationID: review.LocationID.String(),
		UserID:     review.UserID.String(),
		Rating:     review.Rating,
		Comment:    review.Comment,
		Photos:     review.Photos,
		Tags:       review.Tags,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}

// MapPageToResponse converts a domain review page to an API response.
func MapPageToResponse(page *reviewDomain.Page, pageNumber, limit int) ListReviewsResponse {
	reviews := make([]ReviewResponse, 0, len(page.Data))
	for _, review := range page.Data {
		reviews = append(reviews, MapReviewToResponse(review))
	}

	return ListReviewsResponse{
		Data:       reviews,
		TotalCount: page.TotalCount,
		HasMore:    page.HasMore,
		Page:       pageNumber,
		Limit:      limit,
	}
}
