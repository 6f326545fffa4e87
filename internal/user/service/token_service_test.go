package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/places/internal/user/domain"
)

func testUser(t *testing.T) *domain.User {
	t.Helper()

	email, err := domain.NewEmail("test@example.com")
	require.NoError(t, err)

	user, err := domain.NewUser(domain.NewUserInput{
		ID:       uuid.New(),
		Email:    email,
		Username: "testuser",
	})
	require.NoError(t, err)

	return user
}

func TestTokenService_GeneratePair(t *testing.T) {
	tokens := NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	user := testUser(t)

	pair, err := tokens.GeneratePair(user)

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.True(t, pair.RefreshExpiresAt.After(pair.AccessExpiresAt))
}

func TestTokenService_ParseAccessToken(t *testing.T) {
	tokens := NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	user := testUser(t)

	t.Run("Success_RoundTrip", func(t *testing.T) {
		pair, err := tokens.GeneratePair(user)
		require.NoError(t, err)

		claims, err := tokens.ParseAccessToken(pair.AccessToken)

		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "testuser", claims.Username)
	})

	t.Run("Error_RefreshTokenRejected", func(t *testing.T) {
		pair, err := tokens.GeneratePair(user)
		require.NoError(t, err)

		_, err = tokens.ParseAccessToken(pair.RefreshToken)

		assert.Error(t, err)
	})

	t.Run("Error_WrongSecret", func(t *testing.T) {
		other := NewTokenService("other-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
		pair, err := other.GeneratePair(user)
		require.NoError(t, err)

		_, err = tokens.ParseAccessToken(pair.AccessToken)

		assert.Error(t, err)
	})

	t.Run("Error_ExpiredToken", func(t *testing.T) {
		expired := NewTokenService("access-secret", "refresh-secret", -time.Minute, 24*time.Hour)
		pair, err := expired.GeneratePair(user)
		require.NoError(t, err)

		_, err = tokens.ParseAccessToken(pair.AccessToken)

		assert.Error(t, err)
	})

	t.Run("Error_Garbage", func(t *testing.T) {
		_, err := tokens.ParseAccessToken("not-a-jwt")

		assert.Error(t, err)
	})
}

func TestTokenService_ParseRefreshToken(t *testing.T) {
	tokens := NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	user := testUser(t)

	pair, err := tokens.GeneratePair(user)
	require.NoError(t, err)

	claims, err := tokens.ParseRefreshToken(pair.RefreshToken)

	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestTokenService_HashRefreshToken(t *testing.T) {
	tokens := NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	first := tokens.HashRefreshToken("some-token")
	second := tokens.HashRefreshToken("some-token")
	other := tokens.HashRefreshToken("other-token")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Len(t, first, 64)
}
