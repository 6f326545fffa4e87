package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/places/internal/errors"
)

func TestGetLocationDetailUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := &mockLocationRepository{}
		location := testLocation(t, "City Museum")

		mockRepo.On("GetByID", ctx, location.ID).
			Return(location, nil).
			Once()

		uc := NewGetLocationDetailUseCase(mockRepo)
		res := uc.Execute(ctx, location.ID)

		require.True(t, res.Success())
		assert.Equal(t, "City Museum", res.Data().Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_MissingLocationMapsToNotFound", func(t *testing.T) {
		mockRepo := &mockLocationRepository{}
		id := uuid.New()

		mockRepo.On("GetByID", ctx, id).
			Return(nil, nil).
			Once()

		uc := NewGetLocationDetailUseCase(mockRepo)
		res := uc.Execute(ctx, id)

		require.False(t, res.Success())
		assert.Equal(t, apperrors.CodeNotFound, res.Code())
		assert.Equal(t, "Location not found", res.Err().Message)
	})

	t.Run("Error_RepositoryFailureMapsToFetchFailed", func(t *testing.T) {
		mockRepo := &mockLocationRepository{}
		id := uuid.New()

		mockRepo.On("GetByID", ctx, id).
			Return(nil, apperrors.New("connection refused")).
			Once()

		uc := NewGetLocationDetailUseCase(mockRepo)
		res := uc.Execute(ctx, id)

		require.False(t, res.Success())
		assert.Equal(t, apperrors.CodeFetchFailed, res.Code())
		assert.Equal(t, "connection refused", res.Err().Message)
	})
}
