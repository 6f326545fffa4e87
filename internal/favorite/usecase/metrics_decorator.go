package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/favorite/domain"
	"github.com/allisson/places/internal/metrics"
	"github.com/allisson/places/internal/result"
)

const metricsModule = "favorite"

func operationStatus(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

// toggleFavoriteWithMetrics decorates ToggleFavoriteExecutor with metrics
// instrumentation.
type toggleFavoriteWithMetrics struct {
	next    ToggleFavoriteExecutor
	metrics metrics.BusinessMetrics
}

// NewToggleFavoriteWithMetrics wraps a ToggleFavoriteExecutor with metrics recording.
func NewToggleFavoriteWithMetrics(
	next ToggleFavoriteExecutor,
	m metrics.BusinessMetrics,
) ToggleFavoriteExecutor {
	return &toggleFavoriteWithMetrics{next: next, metrics: m}
}

func (d *toggleFavoriteWithMetrics) Execute(
	ctx context.Context,
	userID, locationID uuid.UUID,
) result.Result[bool] {
	start := time.Now()
	res := d.next.Execute(ctx, userID, locationID)

	status := operationStatus(res.Success())
	d.metrics.RecordOperation(ctx, metricsModule, "toggle_favorite", status)
	d.metrics.RecordDuration(ctx, metricsModule, "toggle_favorite", time.Since(start), status)

	return res
}

// listFavoritesWithMetrics decorates ListFavoritesExecutor with metrics
// instrumentation.
type listFavoritesWithMetrics struct {
	next    ListFavoritesExecutor
	metrics metrics.BusinessMetrics
}

// NewListFavoritesWithMetrics wraps a ListFavoritesExecutor with metrics recording.
func NewListFavoritesWithMetrics(
	next ListFavoritesExecutor,
	m metrics.BusinessMetrics,
) ListFavoritesExecutor {
	return &listFavoritesWithMetrics{next: next, metrics: m}
}

func (d *listFavoritesWithMetrics) Execute(
	ctx context.Context,
	userID uuid.UUID,
) result.Result[[]*domain.Favorite] {
	start := time.Now()
	res := d.next.Execute(ctx, userID)

	status := operationStatus(res.Success())
	d.metrics.RecordOperation(ctx, metricsModule, "list_favorites", status)
	d.metrics.RecordDuration(ctx, metricsModule, "list_favorites", time.Since(start), status)

	return res
}
