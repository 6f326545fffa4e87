package usecase

import (
	"context"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/result"
	"github.com/allisson/places/internal/user/domain"
)

// RegisterInput contains the raw sign-up fields.
type RegisterInput struct {
	Email    string
	Password string
	Username string
}

// RegisterUseCase creates a new account through the auth port.
type RegisterUseCase struct {
	authPort AuthPort
}

// NewRegisterUseCase creates a new RegisterUseCase.
func NewRegisterUseCase(authPort AuthPort) *RegisterUseCase {
	return &RegisterUseCase{authPort: authPort}
}

// Execute validates username, email and password through the domain value
// objects before calling sign-up. Validation failures return immediately
// without invoking the port.
func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) result.Result[*domain.Session] {
	if !domain.ValidateUsername(input.Username) {
		return result.Fail[*domain.Session](apperrors.Validation(
			apperrors.CodeInvalidUsername,
			"username must be 3-20 characters of letters, numbers and underscores",
		))
	}

	email, err := domain.NewEmail(input.Email)
	if err != nil {
		return result.Fail[*domain.Session](apperrors.AsDomainError(err))
	}

	password, err := domain.NewPassword(input.Password)
	if err != nil {
		return result.Fail[*domain.Session](apperrors.AsDomainError(err))
	}

	session, err := uc.authPort.SignUp(ctx, email.String(), password.Value(), input.Username)
	if err != nil {
		// Recognized business failures (e.g., duplicate email) pass through
		// with their own code; everything else is an infrastructure failure.
		return result.Fail[*domain.Session](
			apperrors.Coerce(err, apperrors.CodeNetworkError, "network error"),
		)
	}

	return result.Ok(session)
}
