// Package repository implements location persistence and geo queries for
// PostgreSQL and MySQL, plus a key-value cache decorator for detail lookups.
// Coordinates are stored as plain latitude/longitude columns and nearby
// lookups compute the great-circle distance in SQL.
package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/database"
	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/location/domain"
	"github.com/allisson/places/internal/location/usecase"
)

// PostgreSQLLocationRepository implements location persistence for PostgreSQL databases.
type PostgreSQLLocationRepository struct {
	db *sql.DB
}

// NewPostgreSQLLocationRepository creates a new PostgreSQL location repository instance.
func NewPostgreSQLLocationRepository(db *sql.DB) *PostgreSQLLocationRepository {
	return &PostgreSQLLocationRepository{db: db}
}

// Create inserts a new location.
func (p *PostgreSQLLocationRepository) Create(ctx context.Context, location *domain.Location) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO locations (id, name, description, category, latitude, longitude, address, city, country, image_url, rating, review_count, created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := querier.ExecContext(
		ctx,
		query,
		location.ID,
		location.Name,
		location.Description,
		location.Category,
		location.Coordinates.Latitude(),
		location.Coordinates.Longitude(),
		location.Address,
		location.City,
		location.Country,
		location.ImageURL,
		location.Rating,
		location.ReviewCount,
		location.CreatedBy,
		location.CreatedAt,
		location.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create location")
	}
	return nil
}

// GetByID retrieves a location by ID, or (nil, nil) when absent.
func (p *PostgreSQLLocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, description, category, latitude, longitude, address, city, country, image_url, rating, review_count, created_by, created_at, updated_at
			  FROM locations
			  WHERE id = $1`

	location, err := scanLocation(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "failed to get location")
	}
	return location, nil
}

// Search performs a case-insensitive text search over name and description,
// narrowed by the optional filters, ordered by rating.
func (p *PostgreSQLLocationRepository) Search(
	ctx context.Context,
	query string,
	filters usecase.SearchFilters,
	pagination usecase.Pagination,
) ([]*domain.Location, error) {
	querier := database.GetTx(ctx, p.db)

	stmt := `SELECT id, name, description, category, latitude, longitude, address, city, country, image_url, rating, review_count, created_by, created_at, updated_at
			 FROM locations
			 WHERE (LOWER(name) LIKE $1 OR LOWER(description) LIKE $1)
			   AND ($2 = '' OR category = $2)
			   AND ($3 = '' OR LOWER(city) = $3)
			   AND rating >= $4
			 ORDER BY rating DESC, review_count DESC
			 LIMIT $5 OFFSET $6`

	pattern := "%" + strings.ToLower(query) + "%"
	offset := (pagination.Page - 1) * pagination.Limit

	rows, err := querier.QueryContext(
		ctx,
		stmt,
		pattern,
		filters.Category,
		strings.ToLower(filters.City),
		filters.MinRating,
		pagination.Limit,
		offset,
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to search locations")
	}
	defer rows.Close()

	return collectLocations(rows)
}

// FindNearby returns locations within radiusKm of the origin, closest first.
// Distance is the haversine great-circle distance computed in SQL.
func (p *PostgreSQLLocationRepository) FindNearby(
	ctx context.Context,
	origin domain.Coordinates,
	radiusKm float64,
	limit int,
) ([]*domain.Location, error) {
	querier := database.GetTx(ctx, p.db)

	stmt := `SELECT id, name, description, category, latitude, longitude, address, city, country, image_url, rating, review_count, created_by, created_at, updated_at
			 FROM (
				 SELECT *,
					 6371.0 * 2 * ASIN(SQRT(
						 POWER(SIN(RADIANS(latitude - $1) / 2), 2) +
						 COS(RADIANS($1)) * COS(RADIANS(latitude)) *
						 POWER(SIN(RADIANS(longitude - $2) / 2), 2)
					 )) AS distance_km
				 FROM locations
			 ) AS nearby
			 WHERE distance_km <= $3
			 ORDER BY distance_km
			 LIMIT $4`

	rows, err := querier.QueryContext(
		ctx,
		stmt,
		origin.Latitude(),
		origin.Longitude(),
		radiusKm,
		limit,
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to find nearby locations")
	}
	defer rows.Close()

	return collectLocations(rows)
}

// scanLocation reads a full location row. Callers handle sql.ErrNoRows.
func scanLocation(row rowScanner) (*domain.Location, error) {
	var (
		location  domain.Location
		latitude  float64
		longitude float64
	)
	err := row.Scan(
		&location.ID,
		&location.Name,
		&location.Description,
		&location.Category,
		&latitude,
		&longitude,
		&location.Address,
		&location.City,
		&location.Country,
		&location.ImageURL,
		&location.Rating,
		&location.ReviewCount,
		&location.CreatedBy,
		&location.CreatedAt,
		&location.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	coordinates, err := domain.NewCoordinates(latitude, longitude)
	if err != nil {
		return nil, apperrors.Wrap(err, "stored coordinates are invalid")
	}
	location.Coordinates = coordinates

	return &location, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func collectLocations(rows *sql.Rows) ([]*domain.Location, error) {
	locations := []*domain.Location{}
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan location")
		}
		locations = append(locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate locations")
	}
	return locations, nil
}
