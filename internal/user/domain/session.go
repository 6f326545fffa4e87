package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated backend session.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         *User
}

// IsExpired reports whether the access token lifetime has elapsed.
func (s *Session) IsExpired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}

// OAuthProvider identifies an external identity provider.
// Providers are an enum, not user input; no validating factory is needed.
type OAuthProvider string

// Supported OAuth providers.
const (
	ProviderGoogle   OAuthProvider = "google"
	ProviderApple    OAuthProvider = "apple"
	ProviderFacebook OAuthProvider = "facebook"
)

// IsValid reports whether the provider is one of the supported set.
func (p OAuthProvider) IsValid() bool {
	switch p {
	case ProviderGoogle, ProviderApple, ProviderFacebook:
		return true
	}
	return false
}

// SessionRecord is the persisted shape of a session: only the refresh token
// hash is stored, so a database leak does not leak usable tokens. Deleting
// the record revokes the refresh token.
type SessionRecord struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	RefreshTokenHash string
	ExpiresAt        time.Time
	CreatedAt        time.Time
}

// IsExpired reports whether the refresh token lifetime has elapsed.
func (r *SessionRecord) IsExpired() bool {
	return time.Now().UTC().After(r.ExpiresAt)
}

// AuthState describes an auth-state-change notification delivered to
// subscribers registered through the auth port.
type AuthState struct {
	Event   string // "SIGNED_IN", "SIGNED_OUT", "TOKEN_REFRESHED"
	Session *Session
}
