package dto

import (
	"time"

	locationDomain "github.com/allisson/places/internal/location/domain"
)

// LocationResponse represents a place in API responses.
type LocationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	ImageURL    string    `json:"image_url,omitempty"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListLocationsResponse wraps a page of locations.
type ListLocationsResponse struct {
	Data  []LocationResponse `json:"data"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// MapLocationToResponse converts a domain location to an API response.
func MapLocationToResponse(location *locationDomain.Location) LocationResponse {
	return LocationResponse{
		ID:          location.ID.String(),
		Name:        location.Name,
		Description: location.Description,
		Category:    location.Category,
		Latitude:    location.Coordinates.Latitude(),
		Longitude:   location.Coordinates.Longitude(),
		Address:     location.Address,
		City:        location.City,
		Country:     location.Country,
		ImageURL:    location.ImageURL,
		Rating:      location.Rating,
		ReviewCount: location.ReviewCount,
		CreatedAt:   location.CreatedAt,
		UpdatedAt:   location.UpdatedAt,
	}
}

// MapLocationsToResponse converts a slice of domain locations to API responses.
func MapLocationsToResponse(locations []*locationDomain.Location) []LocationResponse {
	responses := make([]LocationResponse, 0, len(locations))
	for _, location := range locations {
		responses = append(responses, MapLocationToResponse(location))
	}
	return responses
}
