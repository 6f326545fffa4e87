// Package usecase implements the favorite use cases: toggling a favorite
// and listing a user's favorites.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/favorite/domain"
	"github.com/allisson/places/internal/result"
)

// FavoriteRepository defines the interface for favorite persistence
// operations. Favorites are keyed by the (user, location) pair.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *domain.Favorite) error
	Delete(ctx context.Context, userID, locationID uuid.UUID) error
	IsFavorite(ctx context.Context, userID, locationID uuid.UUID) (bool, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Favorite, error)
}

// ToggleFavoriteExecutor defines the interface for the toggle use case.
type ToggleFavoriteExecutor interface {
	Execute(ctx context.Context, userID, locationID uuid.UUID) result.Result[bool]
}

// ListFavoritesExecutor defines the interface for the listing use case.
type ListFavoritesExecutor interface {
	Execute(ctx context.Context, userID uuid.UUID) result.Result[[]*domain.Favorite]
}
