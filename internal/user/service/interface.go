// Package service provides the authentication backend: Argon2id credential
// hashing, JWT issuing and parsing, and the adapter implementing the auth
// port over the user and session repositories.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/user/domain"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify performs a constant-time comparison; any parsing error counts
	// as a mismatch.
	Verify(password, hash string) bool
}

// TokenPair is a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// Claims are the verified contents of a parsed token.
type Claims struct {
	UserID   uuid.UUID
	Username string
}

// TokenService issues and parses the application's JWTs. Refresh tokens are
// additionally hashed for at-rest storage and revocation lookup.
type TokenService interface {
	GeneratePair(user *domain.User) (*TokenPair, error)
	ParseAccessToken(token string) (*Claims, error)
	ParseRefreshToken(token string) (*Claims, error)
	HashRefreshToken(token string) string
}

// UserRepository defines the persistence operations the auth backend needs.
// Password hashes live beside the user row but never on the domain entity.
// Lookup methods return (nil, nil) when no row exists.
type UserRepository interface {
	CreateWithPassword(ctx context.Context, user *domain.User, passwordHash string) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetPasswordHash(ctx context.Context, userID uuid.UUID) (string, error)
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// SessionRepository defines the persistence operations for session records.
// GetByTokenHash returns (nil, nil) when no record exists.
type SessionRepository interface {
	Create(ctx context.Context, record *domain.SessionRecord) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.SessionRecord, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
