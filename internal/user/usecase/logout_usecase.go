package usecase

import (
	"context"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/result"
)

// LogoutUseCase terminates the current session.
type LogoutUseCase struct {
	authPort AuthPort
}

// NewLogoutUseCase creates a new LogoutUseCase.
func NewLogoutUseCase(authPort AuthPort) *LogoutUseCase {
	return &LogoutUseCase{authPort: authPort}
}

// Execute signs out through the auth port. There is no input to validate.
// Port failures map to LOGOUT_ERROR, keeping the failure message when one
// exists and falling back to "Logout failed" otherwise.
func (uc *LogoutUseCase) Execute(ctx context.Context) result.Result[bool] {
	if err := uc.authPort.SignOut(ctx); err != nil {
		coerced := apperrors.Coerce(err, apperrors.CodeLogoutError, "Logout failed")
		if coerced.Code != apperrors.CodeLogoutError {
			coerced = apperrors.Infrastructure(apperrors.CodeLogoutError, coerced.Message)
		}
		return result.Fail[bool](coerced)
	}
	return result.Ok(true)
}
