package usecase

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/favorite/domain"
	"github.com/allisson/places/internal/result"
)

// ToggleFavoriteUseCase flips a user's favorite state for a location.
type ToggleFavoriteUseCase struct {
	favoriteRepo FavoriteRepository
}

// NewToggleFavoriteUseCase creates a new ToggleFavoriteUseCase.
func NewToggleFavoriteUseCase(favoriteRepo FavoriteRepository) *ToggleFavoriteUseCase {
	return &ToggleFavoriteUseCase{favoriteRepo: favoriteRepo}
}

// Execute reads the current state, then invokes exactly one of create or
// delete. A failure at any step short-circuits without calling the sibling
// operation. Returns the new state: true when the location is now a
// favorite. The read-then-write sequence is not atomic; concurrent toggles
// on the same pair are resolved by the repository's unique constraint.
func (uc *ToggleFavoriteUseCase) Execute(
	ctx context.Context,
	userID, locationID uuid.UUID,
) result.Result[bool] {
	favorited, err := uc.favoriteRepo.IsFavorite(ctx, userID, locationID)
	if err != nil {
		return result.Fail[bool](
			apperrors.Coerce(err, apperrors.CodeStorageError, "Failed to toggle favorite"),
		)
	}

	if favorited {
		if err := uc.favoriteRepo.Delete(ctx, userID, locationID); err != nil {
			return result.Fail[bool](
				apperrors.Coerce(err, apperrors.CodeStorageError, "Failed to toggle favorite"),
			)
		}
		return result.Ok(false)
	}

	if err := uc.favoriteRepo.Create(ctx, domain.NewFavorite(userID, locationID)); err != nil {
		return result.Fail[bool](
			apperrors.Coerce(err, apperrors.CodeStorageError, "Failed to toggle favorite"),
		)
	}
	return result.Ok(true)
}
