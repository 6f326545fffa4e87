package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/location/domain"
	"github.com/allisson/places/internal/metrics"
	"github.com/allisson/places/internal/result"
)

const metricsModule = "location"

func operationStatus(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

// searchLocationsWithMetrics decorates SearchLocationsExecutor with metrics
// instrumentation.
type searchLocationsWithMetrics struct {
	next    SearchLocationsExecutor
	metrics metrics.BusinessMetrics
}

// NewSearchLocationsWithMetrics wraps a SearchLocationsExecutor with metrics recording.
func NewSearchLocationsWithMetrics(
	next SearchLocationsExecutor,
	m metrics.BusinessMetrics,
) SearchLocationsExecutor {
	return &searchLocationsWithMetrics{next: next, metrics: m}
}

func (s *searchLocationsWithMetrics) Execute(
	ctx context.Context,
	input SearchLocationsInput,
) result.Result[[]*domain.Location] {
	start := time.Now()
	res := s.next.Execute(ctx, input)

	status := operationStatus(res.Success())
	s.metrics.RecordOperation(ctx, metricsModule, "search_locations", status)
	s.metrics.RecordDuration(ctx, metricsModule, "search_locations", time.Since(start), status)

	return res
}

// getNearbyLocationsWithMetrics decorates GetNearbyLocationsExecutor with
// metrics instrumentation.
type getNearbyLocationsWithMetrics struct {
	next    GetNearbyLocationsExecutor
	metrics metrics.BusinessMetrics
}

// NewGetNearbyLocationsWithMetrics wraps a GetNearbyLocationsExecutor with metrics recording.
func NewGetNearbyLocationsWithMetrics(
	next GetNearbyLocationsExecutor,
	m metrics.BusinessMetrics,
) GetNearbyLocationsExecutor {
	return &getNearbyLocationsWithMetrics{next: next, metrics: m}
}

func (g *getNearbyLocationsWithMetrics) Execute(
	ctx context.Context,
	input GetNearbyLocationsInput,
) ([]*domain.Location, error) {
	start := time.Now()
	locations, err := g.next.Execute(ctx, input)

	status := operationStatus(err == nil)
	g.metrics.RecordOperation(ctx, metricsModule, "get_nearby_locations", status)
	g.metrics.RecordDuration(ctx, metricsModule, "get_nearby_locations", time.Since(start), status)

	return locations, err
}

// getLocationDetailWithMetrics decorates GetLocationDetailExecutor with
// metrics instrumentation.
type getLocationDetailWithMetrics struct {
	next    GetLocationDetailExecutor
	metrics metrics.BusinessMetrics
}

// NewGetLocationDetailWithMetrics wraps a GetLocationDetailExecutor with metrics recording.
func NewGetLocationDetailWithMetrics(
	next GetLocationDetailExecutor,
	m metrics.BusinessMetrics,
) GetLocationDetailExecutor {
	return &getLocationDetailWithMetrics{next: next, metrics: m}
}

func (g *getLocationDetailWithMetrics) Execute(
	ctx context.Context,
	id uuid.UUID,
) result.Result[*domain.Location] {
	start := time.Now()
	res := g.next.Execute(ctx, id)

	status := operationStatus(res.Success())
	g.metrics.RecordOperation(ctx, metricsModule, "get_location_detail", status)
	g.metrics.RecordDuration(ctx, metricsModule, "get_location_detail", time.Since(start), status)

	return res
}

// createLocationWithMetrics decorates CreateLocationExecutor with metrics
// instrumentation.
type createLocationWithMetrics struct {
	next    CreateLocationExecutor
	metrics metrics.BusinessMetrics
}

// NewCreateLocationWithMetrics wraps a CreateLocationExecutor with metrics recording.
func NewCreateLocationWithMetrics(
	next CreateLocationExecutor,
	m metrics.BusinessMetrics,
) CreateLocationExecutor {
	return &createLocationWithMetrics{next: next, metrics: m}
}

func (c *createLocationWithMetrics) Execute(
	ctx context.Context,
	input CreateLocationInput,
) result.Result[*domain.Location] {
	start := time.Now()
	res := c.next.Execute(ctx, input)

	status := operationStatus(res.Success())
	c.metrics.RecordOperation(ctx, metricsModule, "create_location", status)
	c.metrics.RecordDuration(ctx, metricsModule, "create_location", time.Since(start), status)

	return res
}
