// Package domain defines the location domain model: the coordinates value
// object and the point-of-interest aggregate.
package domain

import (
	"encoding/json"
	"math"

	apperrors "github.com/allisson/places/internal/errors"
)

// earthRadiusMeters is the mean Earth radius used by the haversine distance.
const earthRadiusMeters = 6371000.0

// Coordinates is an immutable latitude/longitude pair. Only NewCoordinates
// builds non-zero values, so the range invariant always holds.
type Coordinates struct {
	latitude  float64
	longitude float64
}

// IsValidCoordinates reports whether the pair is within range.
// Bounds are inclusive: exactly ±90/±180 are accepted.
func IsValidCoordinates(latitude, longitude float64) bool {
	if math.IsNaN(latitude) || math.IsNaN(longitude) {
		return false
	}
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}

// NewCoordinates validates and builds a coordinate pair.
// Fails with INVALID_COORDINATES when either component is out of range.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if !IsValidCoordinates(latitude, longitude) {
		return Coordinates{}, apperrors.Validation(
			apperrors.CodeInvalidCoordinates,
			"latitude must be within [-90, 90] and longitude within [-180, 180]",
		)
	}
	return Coordinates{latitude: latitude, longitude: longitude}, nil
}

// Latitude returns the latitude in degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// DistanceTo computes the great-circle distance to other in meters using the
// haversine formula.
func (c Coordinates) DistanceTo(other Coordinates) float64 {
	lat1 := c.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	deltaLat := (other.latitude - c.latitude) * math.Pi / 180
	deltaLon := (other.longitude - c.longitude) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Equals compares two coordinate pairs by value.
func (c Coordinates) Equals(other Coordinates) bool {
	return c.latitude == other.latitude && c.longitude == other.longitude
}

// coordinatesJSON is the wire shape for coordinate pairs.
type coordinatesJSON struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MarshalJSON implements json.Marshaler.
func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal(coordinatesJSON{Latitude: c.latitude, Longitude: c.longitude})
}

// UnmarshalJSON implements json.Unmarshaler, enforcing the range invariant.
func (c *Coordinates) UnmarshalJSON(data []byte) error {
	var raw coordinatesJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewCoordinates(raw.Latitude, raw.Longitude)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
