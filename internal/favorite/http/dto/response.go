// Package dto provides data transfer objects for HTTP response handling.
package dto

import (
	"time"

	favoriteDomain "github.com/allisson/places/internal/favorite/domain"
)

// FavoriteResponse represents a favorite record in API responses.
type FavoriteResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	LocationID string    `json:"location_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// MapFavoriteToResponse converts a domain favorite to an API response.
func MapFavoriteToResponse(favorite *favoriteDomain.Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:         favorite.ID.String(),
		UserID:     favorite.UserID.String(),
		LocationID: favorite.LocationID.String(),
		CreatedAt:  favorite.CreatedAt,
	}
}

// MapFavoritesToResponse converts a slice of domain favorites to API responses.
func MapFavoritesToResponse(favorites []*favoriteDomain.Favorite) []FavoriteResponse {
	responses := make([]FavoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		responses = append(responses, MapFavoriteToResponse(favorite))
	}
	return responses
}
