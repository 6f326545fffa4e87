package usecase

import (
	"context"
	"time"

	"github.com/allisson/places/internal/metrics"
	"github.com/allisson/places/internal/result"
	"github.com/allisson/places/internal/review/domain"
)

const metricsModule = "review"

func operationStatus(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

// createReviewWithMetrics decorates CreateReviewExecutor with metrics
// instrumentation.
type createReviewWithMetrics struct {
	next    CreateReviewExecutor
	metrics metrics.BusinessMetrics
}

// NewCreateReviewWithMetrics wraps a CreateReviewExecutor with metrics recording.
func NewCreateReviewWithMetrics(
	next CreateReviewExecutor,
	m metrics.BusinessMetrics,
) CreateReviewExecutor {
	return &createReviewWithMetrics{next: next, metrics: m}
}

func (c *createReviewWithMetrics) Execute(
	ctx context.Context,
	input CreateReviewInput,
) result.Result[*domain.Review] {
	start := time.Now()
	res := c.next.Execute(ctx, input)

	status := operationStatus(res.Success())
	c.metrics.RecordOperation(ctx, metricsModule, "create_review", status)
	c.metrics.RecordDuration(ctx, metricsModule, "create_review", time.Since(start), status)

	return res
}

// getLocationReviewsWithMetrics decorates GetLocationReviewsExecutor with
// metrics instrumentation.
type getLocationReviewsWithMetrics struct {
	next    GetLocationReviewsExecutor
	metrics metrics.BusinessMetrics
}

// NewGetLocationReviewsWithMetrics wraps a GetLocationReviewsExecutor with metrics recording.
func NewGetLocationReviewsWithMetrics(
	next GetLocationReviewsExecutor,
	m metrics.BusinessMetrics,
) GetLocationReviewsExecutor {
	return &getLocationReviewsWithMetrics{next: next, metrics: m}
}

func (g *getLocationReviewsWithMetrics) Execute(
	ctx context.Context,
	input GetLocationReviewsInput,
) result.Result[*domain.Page] {
	start := time.Now()
	res := g.next.Execute(ctx, input)

	status := operationStatus(res.Success())
	g.metrics.RecordOperation(ctx, metricsModule, "get_location_reviews", status)
	g.metrics.RecordDuration(ctx, metricsModule, "get_location_reviews", time.Since(start), status)

	return res
}
