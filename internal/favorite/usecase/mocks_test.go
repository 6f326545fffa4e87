package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/places/internal/favorite/domain"
	"github.com/allisson/places/internal/metrics"
)

// mockFavoriteRepository is a mock implementation of FavoriteRepository.
type mockFavoriteRepository struct {
	mock.Mock
}

func (m *mockFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *mockFavoriteRepository) Delete(ctx context.Context, userID, locationID uuid.UUID) error {
	args := m.Called(ctx, userID, locationID)
	return args.Error(0)
}

func (m *mockFavoriteRepository) IsFavorite(
	ctx context.Context,
	userID, locationID uuid.UUID,
) (bool, error) {
	args := m.Called(ctx, userID, locationID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteRepository) ListByUserID(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Favorite), args.Error(1)
}

var _ FavoriteRepository = (*mockFavoriteRepository)(nil)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, module, operation, status string) {
	m.Called(ctx, module, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	module, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, module, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)
