package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/database"
	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/favorite/domain"
)

// MySQLFavoriteRepository implements favorite persistence for MySQL databases.
type MySQLFavoriteRepository struct {
	db *sql.DB
}

// NewMySQLFavoriteRepository creates a new MySQL favorite repository instance.
func NewMySQLFavoriteRepository(db *sql.DB) *MySQLFavoriteRepository {
	return &MySQLFavoriteRepository{db: db}
}

// Create inserts a new favorite.
func (m *MySQLFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO favorites (id, user_id, location_id, created_at)
			  VALUES (?, ?, ?, ?)`

	id, err := favorite.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal favorite id")
	}
	userID, err := favorite.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}
	locationID, err := favorite.LocationID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal location id")
	}

	_, err = querier.ExecContext(ctx, query, id, userID, locationID, favorite.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create favorite")
	}
	return nil
}

// Delete removes the favorite for the (user, location) pair.
func (m *MySQLFavoriteRepository) Delete(ctx context.Context, userID, locationID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM favorites WHERE user_id = ? AND location_id = ?`

	rawUserID, rawLocationID, err := marshalPair(userID, locationID)
	if err != nil {
		return err
	}

	if _, err := querier.ExecContext(ctx, query, rawUserID, rawLocationID); err != nil {
		return apperrors.Wrap(err, "failed to delete favorite")
	}
	return nil
}

// IsFavorite reports whether the (user, location) pair is favorited.
func (m *MySQLFavoriteRepository) IsFavorite(
	ctx context.Context,
	userID, locationID uuid.UUID,
) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = ? AND location_id = ?)`

	rawUserID, rawLocationID, err := marshalPair(userID, locationID)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := querier.QueryRowContext(ctx, query, rawUserID, rawLocationID).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check favorite")
	}
	return exists, nil
}

// ListByUserID retrieves every favorite a user holds, newest first.
func (m *MySQLFavoriteRepository) ListByUserID(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Favorite, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, user_id, location_id, created_at
			  FROM favorites
			  WHERE user_id = ?
			  ORDER BY created_at DESC`

	rawUserID, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	rows, err := querier.QueryContext(ctx, query, rawUserID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list favorites")
	}
	defer rows.Close()

	favorites := []*domain.Favorite{}
	for rows.Next() {
		var (
			favorite      domain.Favorite
			id            []byte
			rowUserID     []byte
			rowLocationID []byte
		)
		err := rows.Scan(&id, &rowUserID, &rowLocationID, &favorite.CreatedAt)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan favorite")
		}
		if err := favorite.ID.UnmarshalBinary(id); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal favorite id")
		}
		if err := favorite.UserID.UnmarshalBinary(rowUserID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal user id")
		}
		if err := favorite.LocationID.UnmarshalBinary(rowLocationID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal location id")
		}
		favorites = append(favorites, &favorite)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate favorites")
	}
	return favorites, nil
}

func marshalPair(userID, locationID uuid.UUID) ([]byte, []byte, error) {
	rawUserID, err := userID.MarshalBinary()
	if err != nil {
		return nil, nil, apperrors.Wrap(err, "failed to marshal user id")
	}
	rawLocationID, err := locationID.MarshalBinary()
	if err != nil {
		return nil, nil, apperrors.Wrap(err, "failed to marshal location id")
	}
	return rawUserID, rawLocationID, nil
}
