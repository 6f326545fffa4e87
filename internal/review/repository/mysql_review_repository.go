package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/database"
	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/review/domain"
	"github.com/allisson/places/internal/review/usecase"
)

// MySQLReviewRepository implements review persistence for MySQL databases.
type MySQLReviewRepository struct {
	db *sql.DB
}

// NewMySQLReviewRepository creates a new MySQL review repository instance.
func NewMySQLReviewRepository(db *sql.DB) *MySQLReviewRepository {
	return &MySQLReviewRepository{db: db}
}

// Create inserts a new review and refreshes the location rating aggregate.
func (m *MySQLReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO reviews (id, location_id, user_id, rating, comment, photos, tags, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := review.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal review id")
	}
	locationID, err := review.LocationID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal location id")
	}
	userID, err := review.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	photos, tags, err := encodeLists(review)
	if err != nil {
		return err
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		locationID,
		userID,
		review.Rating,
		review.Comment,
		photos,
		tags,
		review.CreatedAt,
		review.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create review")
	}

	aggregate := `UPDATE locations
				  SET rating = (SELECT AVG(rating) FROM reviews WHERE location_id = ?),
					  review_count = (SELECT COUNT(*) FROM reviews WHERE location_id = ?)
				  WHERE id = ?`

	if _, err := querier.ExecContext(ctx, aggregate, locationID, locationID, locationID); err != nil {
		return apperrors.Wrap(err, "failed to refresh location rating")
	}
	return nil
}

// GetByLocationID retrieves a page of reviews for a location, newest first.
func (m *MySQLReviewRepository) GetByLocationID(
	ctx context.Context,
	locationID uuid.UUID,
	options usecase.ListOptions,
) (*domain.Page, error) {
	querier := database.GetTx(ctx, m.db)

	rawLocationID, err := locationID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal location id")
	}

	countQuery := `SELECT COUNT(*) FROM reviews WHERE location_id = ?`

	var total int
	if err := querier.QueryRowContext(ctx, countQuery, rawLocationID).Scan(&total); err != nil {
		return nil, apperrors.Wrap(err, "failed to count reviews")
	}

	listQuery := `SELECT id, location_id, user_id, rating, comment, photos, tags, created_at, updated_at
				  FROM reviews
				  WHERE location_id = ?
				  ORDER BY created_at DESC
				  LIMIT ? OFFSET ?`

	offset := (options.Page - 1) * options.Limit
	rows, err := querier.QueryContext(ctx, listQuery, rawLocationID, options.Limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list reviews")
	}
	defer rows.Close()

	reviews := []*domain.Review{}
	for rows.Next() {
		review, err := scanMySQLReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate reviews")
	}

	return &domain.Page{
		Data:       reviews,
		TotalCount: total,
		HasMore:    options.Page*options.Limit < total,
	}, nil
}

func scanMySQLReview(row rowScanner) (*domain.Review, error) {
	var (
		review     domain.Review
		id         []byte
		locationID []byte
		userID     []byte
		photos     []byte
		tags       []byte
	)
	err := row.Scan(
		&id,
		&locationID,
		&userID,
		&review.Rating,
		&review.Comment,
		&photos,
		&tags,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to scan review")
	}

	if err := review.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal review id")
	}
	if err := review.LocationID.UnmarshalBinary(locationID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal location id")
	}
	if err := review.UserID.UnmarshalBinary(userID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	if err := decodeLists(photos, tags, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
