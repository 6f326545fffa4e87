package usecase

import (
	"context"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/result"
	"github.com/allisson/places/internal/user/domain"
)

// ForgotPasswordInput contains the raw reset-request fields.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordUseCase requests a password reset email.
type ForgotPasswordUseCase struct {
	authPort AuthPort
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase.
func NewForgotPasswordUseCase(authPort AuthPort) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{authPort: authPort}
}

// Execute validates the email format, then requests the reset. Port failures
// of any kind still return success: revealing whether the reset succeeded
// would reveal whether the account exists. This deliberately diverges from
// the surface-real-errors rule applied everywhere else.
func (uc *ForgotPasswordUseCase) Execute(
	ctx context.Context,
	input ForgotPasswordInput,
) result.Result[bool] {
	email, err := domain.NewEmail(input.Email)
	if err != nil {
		return result.Fail[bool](apperrors.AsDomainError(err))
	}

	_ = uc.authPort.ResetPassword(ctx, email.String())

	return result.Ok(true)
}
