package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/location/domain"
)

func TestCreateLocationUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := &mockLocationRepository{}

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Location")).
			Return(nil).
			Once()

		uc := NewCreateLocationUseCase(mockRepo)
		res := uc.Execute(ctx, CreateLocationInput{
			Name:      "Pizza Bros",
			Category:  domain.CategoryRestaurant,
			Latitude:  -23.5505,
			Longitude: -46.6333,
			City:      "Sao Paulo",
			Country:   "Brazil",
			CreatedBy: uuid.New(),
		})

		require.True(t, res.Success())
		assert.Equal(t, "Pizza Bros", res.Data().Name)
		assert.NotEqual(t, uuid.Nil, res.Data().ID)
		assert.Equal(t, uuid.Version(7), res.Data().ID.Version())
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_InvalidCoordinates_RepositoryNotInvoked", func(t *testing.T) {
		mockRepo := &mockLocationRepository{}

		uc := NewCreateLocationUseCase(mockRepo)
		res := uc.Execute(ctx, CreateLocationInput{
			Name:      "Pizza Bros",
			Category:  domain.CategoryRestaurant,
			Latitude:  -23.5505,
			Longitude: 181.0,
		})

		require.False(t, res.Success())
		assert.Equal(t, apperrors.CodeInvalidCoordinates, res.Code())
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_BlankName_RepositoryNotInvoked", func(t *testing.T) {
		mockRepo := &mockLocationRepository{}

		uc := NewCreateLocationUseCase(mockRepo)
		res := uc.Execute(ctx, CreateLocationInput{
			Name:     "   ",
			Category: domain.CategoryRestaurant,
		})

		require.False(t, res.Success())
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_RepositoryFailureMapsToStorageError", func(t *testing.T) {
		mockRepo := &mockLocationRepository{}

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Location")).
			Return(apperrors.New("disk full")).
			Once()

		uc := NewCreateLocationUseCase(mockRepo)
		res := uc.Execute(ctx, CreateLocationInput{
			Name:     "Pizza Bros",
			Category: domain.CategoryRestaurant,
		})

		require.False(t, res.Success())
		assert.Equal(t, apperrors.CodeStorageError, res.Code())
		assert.Equal(t, "disk full", res.Err().Message)
	})
}
