// Package repository implements review persistence for PostgreSQL and MySQL.
// Photo and tag lists are stored as JSON text so both engines share the same
// schema shape. Creating a review also refreshes the location's rating
// aggregate; callers wanting atomicity run Create inside a transaction.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/database"
	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/review/domain"
	"github.com/allisson/places/internal/review/usecase"
)

// PostgreSQLReviewRepository implements review persistence for PostgreSQL databases.
type PostgreSQLReviewRepository struct {
	db *sql.DB
}

// NewPostgreSQLReviewRepository creates a new PostgreSQL review repository instance.
func NewPostgreSQLReviewRepository(db *sql.DB) *PostgreSQLReviewRepository {
	return &PostgreSQLReviewRepository{db: db}
}

// Create inserts a new review and refreshes the location rating aggregate.
func (p *PostgreSQLReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO reviews (id, location_id, user_id, rating, comment, photos, tags, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	photos, tags, err := encodeLists(review)
	if err != nil {
		return err
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		review.ID,
		review.LocationID,
		review.UserID,
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
				  SET rating = (SELECT AVG(rating) FROM reviews WHERE location_id = $1),
					  review_count = (SELECT COUNT(*) FROM reviews WHERE location_id = $1)
				  WHERE id = $1`

	if _, err := querier.ExecContext(ctx, aggregate, review.LocationID); err != nil {
		return apperrors.Wrap(err, "failed to refresh location rating")
	}
	return nil
}

// GetByLocationID retrieves a page of reviews for a location, newest first.
func (p *PostgreSQLReviewRepository) GetByLocationID(
	ctx context.Context,
	locationID uuid.UUID,
	options usecase.ListOptions,
) (*domain.Page, error) {
	querier := database.GetTx(ctx, p.db)

	countQuery := `SELECT COUNT(*) FROM reviews WHERE location_id = $1`

	var total int
	if err := querier.QueryRowContext(ctx, countQuery, locationID).Scan(&total); err != nil {
		return nil, apperrors.Wrap(err, "failed to count reviews")
	}

	listQuery := `SELECT id, location_id, user_id, rating, comment, photos, tags, created_at, updated_at
				  FROM reviews
				  WHERE location_id = $1
				  ORDER BY created_at DESC
				  LIMIT $2 OFFSET $3`

	offset := (options.Page - 1) * options.Limit
	rows, err := querier.QueryContext(ctx, listQuery, locationID, options.Limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list reviews")
	}
	defer rows.Close()

	reviews := []*domain.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
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

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func encodeLists(review *domain.Review) (photos, tags []byte, err error) {
	photos, err = json.Marshal(review.Photos)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, "failed to encode photos")
	}
	tags, err = json.Marshal(review.Tags)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, "failed to encode tags")
	}
	return photos, tags, nil
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var (
		review domain.Review
		photos []byte
		tags   []byte
	)
	err := row.Scan(
		&review.ID,
		&review.LocationID,
		&review.UserID,
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

	if err := decodeLists(photos, tags, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func decodeLists(photos, tags []byte, review *domain.Review) error {
	if err := json.Unmarshal(photos, &review.Photos); err != nil {
		return apperrors.Wrap(err, "failed to decode photos")
	}
	if err := json.Unmarshal(tags, &review.Tags); err != nil {
		return apperrors.Wrap(err, "failed to decode tags")
	}
	return nil
}
