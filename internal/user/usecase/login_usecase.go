package usecase

import (
	"context"
	"strings"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/result"
	"github.com/allisson/places/internal/user/domain"
)

// invalidCredentialsSubstring is matched against opaque backend error messages.
// Compatibility shim: some backends report bad credentials as a plain error
// with this literal text instead of a typed domain error.
const invalidCredentialsSubstring = "Invalid login credentials"

// LoginInput contains the raw sign-in fields.
type LoginInput struct {
	Email    string
	Password string
}

// LoginUseCase authenticates a user with email and password.
type LoginUseCase struct {
	authPort AuthPort
}

// NewLoginUseCase creates a new LoginUseCase.
func NewLoginUseCase(authPort AuthPort) *LoginUseCase {
	return &LoginUseCase{authPort: authPort}
}

// Execute validates the credentials locally, then signs in through the auth
// port. The port is never invoked when local validation fails. Recognized
// credential failures map to INVALID_CREDENTIALS with a user-safe message;
// everything else maps to NETWORK_ERROR.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) result.Result[*domain.Session] {
	email, err := domain.NewEmail(input.Email)
	if err != nil {
		return result.Fail[*domain.Session](apperrors.AsDomainError(err))
	}
	if input.Password == "" {
		return result.Fail[*domain.Session](
			apperrors.Validation(apperrors.CodeInvalidPassword, "password must not be empty"),
		)
	}

	session, err := uc.authPort.SignIn(ctx, email.String(), input.Password)
	if err != nil {
		return result.Fail[*domain.Session](classifySignInError(err))
	}

	return result.Ok(session)
}

// classifySignInError maps a sign-in port outcome to the login error taxonomy.
func classifySignInError(err error) *apperrors.DomainError {
	if apperrors.AsDomainError(err) != nil ||
		strings.Contains(err.Error(), invalidCredentialsSubstring) {
		return domain.ErrInvalidCredentials
	}
	return apperrors.Coerce(err, apperrors.CodeNetworkError, "network error")
}
