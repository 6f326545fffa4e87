package service

import (
	"context"

	"github.com/allisson/places/internal/user/domain"
)

type accessTokenKey struct{}

type oauthIdentityKey struct{}

// OAuthIdentity is a provider-verified identity. The HTTP layer validates
// the provider token and attaches the identity before calling the auth port.
type OAuthIdentity struct {
	Provider domain.OAuthProvider
	Email    string
	Username string
}

// WithAccessToken attaches the caller's bearer token to the context so
// session-scoped operations (sign-out, session retrieval) can identify the
// caller.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFromContext returns the caller's bearer token, if any.
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey{}).(string)
	return token, ok && token != ""
}

// WithOAuthIdentity attaches a provider-verified identity to the context.
func WithOAuthIdentity(ctx context.Context, identity OAuthIdentity) context.Context {
	return context.WithValue(ctx, oauthIdentityKey{}, identity)
}

// OAuthIdentityFromContext returns the provider-verified identity, if any.
func OAuthIdentityFromContext(ctx context.Context) (OAuthIdentity, bool) {
	identity, ok := ctx.Value(oauthIdentityKey{}).(OAuthIdentity)
	return identity, ok
}
