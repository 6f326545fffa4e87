package usecase

import (
	"context"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/result"
	"github.com/allisson/places/internal/user/domain"
)

// OAuthLoginUseCase authenticates through an external identity provider.
type OAuthLoginUseCase struct {
	authPort AuthPort
}

// NewOAuthLoginUseCase creates a new OAuthLoginUseCase.
func NewOAuthLoginUseCase(authPort AuthPort) *OAuthLoginUseCase {
	return &OAuthLoginUseCase{authPort: authPort}
}

// Execute signs in with the given provider. The provider is an enum rather
// than user input, so there is no local validation step. Domain errors from
// the port map to OAUTH_ERROR; everything else to NETWORK_ERROR.
func (uc *OAuthLoginUseCase) Execute(
	ctx context.Context,
	provider domain.OAuthProvider,
) result.Result[*domain.Session] {
	session, err := uc.authPort.SignInWithOAuth(ctx, provider)
	if err != nil {
		if domainErr := apperrors.AsDomainError(err); domainErr != nil {
			return result.Fail[*domain.Session](
				apperrors.Infrastructure(apperrors.CodeOAuthError, domainErr.Message),
			)
		}
		return result.Fail[*domain.Session](
			apperrors.Coerce(err, apperrors.CodeNetworkError, "network error"),
		)
	}

	return result.Ok(session)
}
