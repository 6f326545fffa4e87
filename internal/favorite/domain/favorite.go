// Package domain defines the favorite association record.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Favorite links a user to a saved location. It carries no validation beyond
// structure; its lifecycle is fully owned by the toggle use case.
type Favorite struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	LocationID uuid.UUID
	CreatedAt  time.Time
}

// NewFavorite builds a favorite record with a fresh identity and timestamp.
func NewFavorite(userID, locationID uuid.UUID) *Favorite {
	return &Favorite{
		ID:         uuid.Must(uuid.NewV7()),
		UserID:     userID,
		LocationID: locationID,
		CreatedAt:  time.Now().UTC(),
	}
}
