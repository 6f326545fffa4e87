package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/places/internal/metrics"
	"github.com/allisson/places/internal/review/domain"
)

// mockReviewRepository is a mock implementation of ReviewRepository.
type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepository) GetByLocationID(
	ctx context.Context,
	locationID uuid.UUID,
	options ListOptions,
) (*domain.Page, error) {
	args := m.Called(ctx, locationID, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page), args.Error(1)
}

var _ ReviewRepository = (*mockReviewRepository)(nil)

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
