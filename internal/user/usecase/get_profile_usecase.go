package usecase

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/result"
	"github.com/allisson/places/internal/user/domain"
)

// GetProfileUseCase retrieves a user profile by ID.
type GetProfileUseCase struct {
	userRepo UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase.
func NewGetProfileUseCase(userRepo UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo}
}

// Execute loads a profile. A missing user maps to USER_NOT_FOUND; an
// infrastructure failure maps to FETCH_FAILED.
func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uuid.UUID) result.Result[*domain.User] {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return result.Fail[*domain.User](
			apperrors.Coerce(err, apperrors.CodeFetchFailed, "Failed to fetch profile"),
		)
	}
	if user == nil {
		return result.Fail[*domain.User](domain.ErrUserNotFound)
	}

	return result.Ok(user)
}
