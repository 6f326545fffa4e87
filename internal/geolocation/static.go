package geolocation

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/allisson/places/internal/errors"
	locationDomain "github.com/allisson/places/internal/location/domain"
	"github.com/allisson/places/internal/result"
)

// staticAccuracyMeters reflects that a configured fallback origin is a city
// centroid, not a fix.
const staticAccuracyMeters = 50000

// StaticProvider serves a fixed origin, typically the configured fallback
// city center. Permission is always granted. Watches re-deliver the origin
// on an interval so subscribers behave the same as with a live provider.
type StaticProvider struct {
	origin   locationDomain.Coordinates
	interval time.Duration

	mu      sync.Mutex
	nextID  WatchID
	watches map[WatchID]chan struct{}
}

// NewStaticProvider creates a StaticProvider for origin. The interval
// controls watch re-delivery; zero defaults to one minute.
func NewStaticProvider(origin locationDomain.Coordinates, interval time.Duration) *StaticProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &StaticProvider{
		origin:   origin,
		interval: interval,
		watches:  make(map[WatchID]chan struct{}),
	}
}

// CheckPermission always reports granted.
func (p *StaticProvider) CheckPermission(ctx context.Context) result.Result[PermissionState] {
	return result.Ok(PermissionGranted)
}

// RequestPermission always reports granted.
func (p *StaticProvider) RequestPermission(ctx context.Context) result.Result[PermissionState] {
	return result.Ok(PermissionGranted)
}

// CurrentPosition returns the configured origin.
func (p *StaticProvider) CurrentPosition(ctx context.Context) result.Result[*Position] {
	if err := ctx.Err(); err != nil {
		return result.Fail[*Position](ClassifyError(err))
	}
	return result.Ok(p.position())
}

// Watch delivers the origin immediately, then on every interval tick until
// ClearWatch is called or ctx is done.
func (p *StaticProvider) Watch(
	ctx context.Context,
	fn func(result.Result[*Position]),
) result.Result[WatchID] {
	if fn == nil {
		return result.Fail[WatchID](apperrors.Validation(
			apperrors.CodeUnknown, "watch callback must not be nil",
		))
	}

	p.mu.Lock()
	p.nextID++
	id := p.nextID
	stop := make(chan struct{})
	p.watches[id] = stop
	p.mu.Unlock()

	fn(result.Ok(p.position()))

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn(result.Ok(p.position()))
			case <-stop:
				return
			case <-ctx.Done():
				p.mu.Lock()
				if current, ok := p.watches[id]; ok && current == stop {
					delete(p.watches, id)
				}
				p.mu.Unlock()
				return
			}
		}
	}()

	return result.Ok(id)
}

// ClearWatch stops the watch. Clearing an unknown ID succeeds.
func (p *StaticProvider) ClearWatch(ctx context.Context, id WatchID) result.Result[bool] {
	p.mu.Lock()
	stop, ok := p.watches[id]
	if ok {
		delete(p.watches, id)
	}
	p.mu.Unlock()

	if ok {
		close(stop)
	}
	return result.Ok(true)
}

func (p *StaticProvider) position() *Position {
	return &Position{
		Coordinates:    p.origin,
		AccuracyMeters: staticAccuracyMeters,
		Timestamp:      time.Now().UTC(),
	}
}

var _ Provider = (*StaticProvider)(nil)
