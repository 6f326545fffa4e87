package usecase

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/favorite/domain"
	"github.com/allisson/places/internal/result"
)

// ListFavoritesUseCase lists all favorites of a user.
type ListFavoritesUseCase struct {
	favoriteRepo FavoriteRepository
}

// NewListFavoritesUseCase creates a new ListFavoritesUseCase.
func NewListFavoritesUseCase(favoriteRepo FavoriteRepository) *ListFavoritesUseCase {
	return &ListFavoritesUseCase{favoriteRepo: favoriteRepo}
}

// Execute is a thin pass-through to the repository. Failures map to
// FETCH_FAILED unless already classified.
func (uc *ListFavoritesUseCase) Execute(
	ctx context.Context,
	userID uuid.UUID,
) result.Result[[]*domain.Favorite] {
	favorites, err := uc.favoriteRepo.ListByUserID(ctx, userID)
	if err != nil {
		return result.Fail[[]*domain.Favorite](
			apperrors.Coerce(err, apperrors.CodeFetchFailed, "Failed to fetch favorites"),
		)
	}

	return result.Ok(favorites)
}
