package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/user/domain"
)

func testUser(t *testing.T, username string) *domain.User {
	t.Helper()

	email, err := domain.NewEmail(username + "@example.com")
	require.NoError(t, err)

	user, err := domain.NewUser(domain.NewUserInput{
		ID:       uuid.Must(uuid.NewV7()),
		Email:    email,
		Username: username,
	})
	require.NoError(t, err)

	return user
}

func TestGetProfileUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ReturnsUser", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		user := testUser(t, "alice")

		mockRepo.On("GetByID", ctx, user.ID).Return(user, nil).Once()

		uc := NewGetProfileUseCase(mockRepo)
		res := uc.Execute(ctx, user.ID)

		require.True(t, res.Success())
		assert.Equal(t, "alice", res.Data().Username)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_UserNotFound", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		id := uuid.Must(uuid.NewV7())

		mockRepo.On("GetByID", ctx, id).Return(nil, nil).Once()

		uc := NewGetProfileUseCase(mockRepo)
		res := uc.Execute(ctx, id)

		require.False(t, res.Success())
		assert.Equal(t, apperrors.CodeNotFound, res.Code())
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_RepositoryFailureMapsToFetchFailed", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		id := uuid.Must(uuid.NewV7())

		mockRepo.On("GetByID", ctx, id).Return(nil, apperrors.New("connection refused")).Once()

		uc := NewGetProfileUseCase(mockRepo)
		res := uc.Execute(ctx, id)

		require.False(t, res.Success())
		assert.Equal(t, apperrors.CodeFetchFailed, res.Code())
		assert.Equal(t, "Failed to fetch profile", res.Err().Message)
		mockRepo.AssertExpectations(t)
	})
}
