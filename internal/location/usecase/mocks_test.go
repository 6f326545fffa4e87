package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/places/internal/location/domain"
	"github.com/allisson/places/internal/metrics"
)

// mockLocationRepository is a mock implementation of LocationRepository.
type mockLocationRepository struct {
	mock.Mock
}

func (m *mockLocationRepository) Create(ctx context.Context, location *domain.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *mockLocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *mockLocationRepository) Search(
	ctx context.Context,
	query string,
	filters SearchFilters,
	pagination Pagination,
) ([]*domain.Location, error) {
	args := m.Called(ctx, query, filters, pagination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Location), args.Error(1)
}

func (m *mockLocationRepository) FindNearby(
	ctx context.Context,
	origin domain.Coordinates,
	radiusKm float64,
	limit int,
) ([]*domain.Location, error) {
	args := m.Called(ctx, origin, radiusKm, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Location), args.Error(1)
}

var _ LocationRepository = (*mockLocationRepository)(nil)

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

// testLocation builds a valid location aggregate for tests.
func testLocation(t *testing.T, name string) *domain.Location {
	t.Helper()

	coordinates, err := domain.NewCoordinates(-23.5505, -46.6333)
	require.NoError(t, err)

	location, err := domain.NewLocation(domain.NewLocationInput{
		ID:          uuid.New(),
		Name:        name,
		Category:    domain.CategoryRestaurant,
		Coordinates: coordinates,
		City:        "Sao Paulo",
		Country:     "Brazil",
		CreatedBy:   uuid.New(),
	})
	require.NoError(t, err)

	return location
}
