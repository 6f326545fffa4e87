package usecase

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/result"
	"github.com/allisson/places/internal/user/domain"
)

// UpdateProfileInput carries the profile changes. Nil pointers leave the
// current value untouched.
type UpdateProfileInput struct {
	UserID    uuid.UUID
	Username  *string
	AvatarURL *string
	Bio       *string
	Location  *string
}

// UpdateProfileUseCase applies profile changes to an existing user.
type UpdateProfileUseCase struct {
	userRepo UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase.
func NewUpdateProfileUseCase(userRepo UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo}
}

// Execute loads the user, applies the changes through the entity so the
// username invariant is enforced, and persists the result. The repository
// is never written when validation fails.
func (uc *UpdateProfileUseCase) Execute(
	ctx context.Context,
	input UpdateProfileInput,
) result.Result[*domain.User] {
	user, err := uc.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return result.Fail[*domain.User](
			apperrors.Coerce(err, apperrors.CodeFetchFailed, "Failed to fetch profile"),
		)
	}
	if user == nil {
		return result.Fail[*domain.User](domain.ErrUserNotFound)
	}

	updated, err := user.UpdateProfile(domain.UpdateProfileInput{
		Username:  input.Username,
		AvatarURL: input.AvatarURL,
		Bio:       input.Bio,
		Location:  input.Location,
	})
	if err != nil {
		return result.Fail[*domain.User](apperrors.AsDomainError(err))
	}

	if err := uc.userRepo.Update(ctx, updated); err != nil {
		return result.Fail[*domain.User](
			apperrors.Coerce(err, apperrors.CodeStorageError, "Failed to update profile"),
		)
	}

	return result.Ok(updated)
}
