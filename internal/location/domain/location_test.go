package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCoordinates(t *testing.T, lat, lon float64) Coordinates {
	t.Helper()
	coords, err := NewCoordinates(lat, lon)
	require.NoError(t, err)
	return coords
}

func TestNewLocation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		location, err := NewLocation(NewLocationInput{
			ID:          uuid.Must(uuid.NewV7()),
			Name:        "  Central Park  ",
			Description: "Large public park",
			Category:    CategoryPark,
			Coordinates: mustCoordinates(t, 40.7829, -73.9654),
			City:        "New York",
			Country:     "USA",
			CreatedBy:   uuid.Must(uuid.NewV7()),
		})
		require.NoError(t, err)

		assert.Equal(t, "Central Park", location.Name)
		assert.Equal(t, CategoryPark, location.Category)
		assert.False(t, location.CreatedAt.IsZero())
		assert.False(t, location.UpdatedAt.IsZero())
	})

	t.Run("Error_BlankName", func(t *testing.T) {
		_, err := NewLocation(NewLocationInput{
			Name:        "   ",
			Category:    CategoryCafe,
			Coordinates: mustCoordinates(t, 0, 0),
		})
		assert.Error(t, err)
	})

	t.Run("Error_BlankCategory", func(t *testing.T) {
		_, err := NewLocation(NewLocationInput{
			Name:        "Blue Bottle",
			Category:    "",
			Coordinates: mustCoordinates(t, 0, 0),
		})
		assert.Error(t, err)
	})
}

func TestLocation_DistanceFrom(t *testing.T) {
	location, err := NewLocation(NewLocationInput{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        "Times Square",
		Category:    CategoryShopping,
		Coordinates: mustCoordinates(t, 40.758, -73.9855),
	})
	require.NoError(t, err)

	origin := mustCoordinates(t, 40.7829, -73.9654)
	distance := location.DistanceFrom(origin)

	// Times Square to Central Park is roughly 3km.
	assert.Greater(t, distance, 2000.0)
	assert.Less(t, distance, 5000.0)
}
