package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/places/internal/errors"
)

// Category values recognized by search filters. Free-form categories are
// accepted at creation; this list backs the UI filter chips.
const (
	CategoryRestaurant = "restaurant"
	CategoryCafe       = "cafe"
	CategoryBar        = "bar"
	CategoryPark       = "park"
	CategoryMuseum     = "museum"
	CategoryShopping   = "shopping"
	CategoryHotel      = "hotel"
)

// Location is a point of interest. Coordinates validity is enforced
// transitively: NewLocation only accepts a Coordinates value object.
type Location struct {
	ID          uuid.UUID
	Name        string
	Description string
	Category    string
	Coordinates Coordinates
	Address     string
	City        string
	Country     string
	ImageURL    string
	Rating      float64
	ReviewCount int
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewLocationInput contains the parameters for building a location aggregate.
type NewLocationInput struct {
	ID          uuid.UUID
	Name        string
	Description string
	Category    string
	Coordinates Coordinates
	Address     string
	City        string
	Country     string
	ImageURL    string
	Rating      float64
	ReviewCount int
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewLocation builds a validated location aggregate. The name and category
// must be non-blank; timestamps default to the current time when zero.
func NewLocation(input NewLocationInput) (*Location, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.Validation(apperrors.CodeUnknown, "location name must not be blank")
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, apperrors.Validation(apperrors.CodeUnknown, "location category must not be blank")
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

	return &Location{
		ID:          input.ID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Category:    input.Category,
		Coordinates: input.Coordinates,
		Address:     input.Address,
		City:        input.City,
		Country:     input.Country,
		ImageURL:    input.ImageURL,
		Rating:      input.Rating,
		ReviewCount: input.ReviewCount,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// DistanceFrom returns the distance in meters between the location and origin.
func (l *Location) DistanceFrom(origin Coordinates) float64 {
	return origin.DistanceTo(l.Coordinates)
}
