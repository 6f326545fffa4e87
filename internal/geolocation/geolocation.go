// Package geolocation provides the positioning port. The server cannot read
// a device GPS, so the production implementation falls back to a configured
// origin; clients that know their position send it explicitly.
package geolocation

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/allisson/places/internal/errors"
	locationDomain "github.com/allisson/places/internal/location/domain"
	"github.com/allisson/places/internal/result"
)

// PermissionState is the positioning permission status.
type PermissionState string

// Permission states.
const (
	PermissionGranted PermissionState = "granted"
	PermissionDenied  PermissionState = "denied"
	PermissionPrompt  PermissionState = "prompt"
)

// Position is a point with acquisition metadata.
type Position struct {
	Coordinates    locationDomain.Coordinates
	AccuracyMeters float64
	Timestamp      time.Time
}

// WatchID identifies an active position watch.
type WatchID int64

// Provider is the positioning capability consumed by the application. Every
// operation is Result-wrapped; failures carry one of PERMISSION_DENIED,
// POSITION_UNAVAILABLE, TIMEOUT, or UNKNOWN.
type Provider interface {
	CheckPermission(ctx context.Context) result.Result[PermissionState]
	RequestPermission(ctx context.Context) result.Result[PermissionState]
	CurrentPosition(ctx context.Context) result.Result[*Position]
	// Watch delivers positions to fn until ClearWatch is called.
	Watch(ctx context.Context, fn func(result.Result[*Position])) result.Result[WatchID]
	ClearWatch(ctx context.Context, id WatchID) result.Result[bool]
}

// ClassifyError folds a positioning failure into the provider error taxonomy.
func ClassifyError(err error) *apperrors.DomainError {
	switch {
	case err == nil:
		return nil
	case apperrors.AsDomainError(err) != nil:
		return apperrors.AsDomainError(err)
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.Infrastructure(apperrors.CodeTimeout, "position acquisition timed out")
	case errors.Is(err, context.Canceled):
		return apperrors.Infrastructure(apperrors.CodePositionUnavailable, "position acquisition canceled")
	default:
		return apperrors.Coerce(err, apperrors.CodeUnknown, "failed to acquire position")
	}
}
