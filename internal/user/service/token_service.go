package service

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/user/domain"
)

// jwtClaims is the wire shape of the application's tokens.
type jwtClaims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// tokenService implements TokenService with HS256-signed JWTs. Access and
// refresh tokens use separate secrets so one cannot stand in for the other.
type tokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenService creates a TokenService with the given secrets and lifetimes.
func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) TokenService {
	return &tokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// GeneratePair issues a fresh access/refresh token pair for user.
func (t *tokenService) GeneratePair(user *domain.User) (*TokenPair, error) {
	now := time.Now().UTC()
	accessExpiresAt := now.Add(t.accessTTL)
	refreshExpiresAt := now.Add(t.refreshTTL)

	accessToken, err := t.sign(user, now, accessExpiresAt, t.accessSecret)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign access token")
	}
	refreshToken, err := t.sign(user, now, refreshExpiresAt, t.refreshSecret)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign refresh token")
	}

	return &TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

func (t *tokenService) sign(
	user *domain.User,
	issuedAt, expiresAt time.Time,
	secret []byte,
) (string, error) {
	claims := &jwtClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseAccessToken verifies an access token and returns its claims.
func (t *tokenService) ParseAccessToken(token string) (*Claims, error) {
	return parseToken(token, t.accessSecret)
}

// ParseRefreshToken verifies a refresh token and returns its claims.
func (t *tokenService) ParseRefreshToken(token string) (*Claims, error) {
	return parseToken(token, t.refreshSecret)
}

// HashRefreshToken hashes a refresh token with SHA-256 for at-rest storage.
func (t *tokenService) HashRefreshToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

func parseToken(token string, secret []byte) (*Claims, error) {
	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tkn *jwt.Token) (interface{}, error) {
		if _, ok := tkn.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to parse token")
	}
	if !parsed.Valid {
		return nil, apperrors.New("invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperrors.Wrap(err, "invalid token subject")
	}

	return &Claims{UserID: userID, Username: claims.Username}, nil
}
