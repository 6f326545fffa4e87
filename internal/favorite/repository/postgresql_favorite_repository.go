// Package repository implements favorite persistence for PostgreSQL and
// MySQL. The (user_id, location_id) pair is unique at the schema level.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/database"
	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/favorite/domain"
)

// PostgreSQLFavoriteRepository implements favorite persistence for PostgreSQL databases.
type PostgreSQLFavoriteRepository struct {
	db *sql.DB
}

// NewPostgreSQLFavoriteRepository creates a new PostgreSQL favorite repository instance.
func NewPostgreSQLFavoriteRepository(db *sql.DB) *PostgreSQLFavoriteRepository {
	return &PostgreSQLFavoriteRepository{db: db}
}

// Create inserts a new favorite.
func (p *PostgreSQLFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO favorites (id, user_id, location_id, created_at)
			  VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(
		ctx,
		query,
		favorite.ID,
		favorite.UserID,
		favorite.LocationID,
		favorite.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create favorite")
	}
	return nil
}

// Delete removes the favorite for the (user, location) pair.
func (p *PostgreSQLFavoriteRepository) Delete(ctx context.Context, userID, locationID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM favorites WHERE user_id = $1 AND location_id = $2`

	if _, err := querier.ExecContext(ctx, query, userID, locationID); err != nil {
		return apperrors.Wrap(err, "failed to delete favorite")
	}
	return nil
}

// IsFavorite reports whether the (user, location) pair is favorited.
func (p *PostgreSQLFavoriteRepository) IsFavorite(
	ctx context.Context,
	userID, locationID uuid.UUID,
) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND location_id = $2)`

	var exists bool
	if err := querier.QueryRowContext(ctx, query, userID, locationID).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check favorite")
	}
	return exists, nil
}

// ListByUserID retrieves every favorite a user holds, newest first.
func (p *PostgreSQLFavoriteRepository) ListByUserID(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Favorite, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, user_id, location_id, created_at
			  FROM favorites
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := querier.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list favorites")
	}
	defer rows.Close()

	favorites := []*domain.Favorite{}
	for rows.Next() {
		var favorite domain.Favorite
		err := rows.Scan(&favorite.ID, &favorite.UserID, &favorite.LocationID, &favorite.CreatedAt)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan favorite")
		}
		favorites = append(favorites, &favorite)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate favorites")
	}
	return favorites, nil
}
