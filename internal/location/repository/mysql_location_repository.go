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

// MySQLLocationRepository implements location persistence for MySQL databases.
type MySQLLocationRepository struct {
	db *sql.DB
}

// NewMySQLLocationRepository creates a new MySQL location repository instance.
func NewMySQLLocationRepository(db *sql.DB) *MySQLLocationRepository {
	return &MySQLLocationRepository{db: db}
}

// Create inserts a new location.
func (m *MySQLLocationRepository) Create(ctx context.Context, location *domain.Location) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO locations (id, name, description, category, latitude, longitude, address, city, country, image_url, rating, review_count, created_by, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := location.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal location id")
	}

	createdBy, err := location.CreatedBy.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal creator id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
		createdBy,
		location.CreatedAt,
		location.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create location")
	}
	return nil
}

// GetByID retrieves a location by ID, or (nil, nil) when absent.
func (m *MySQLLocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, description, category, latitude, longitude, address, city, country, image_url, rating, review_count, created_by, created_at, updated_at
			  FROM locations
			  WHERE id = ?`

	rawID, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal location id")
	}

	location, err := scanMySQLLocation(querier.QueryRowContext(ctx, query, rawID))
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
func (m *MySQLLocationRepository) Search(
	ctx context.Context,
	query string,
	filters usecase.SearchFilters,
	pagination usecase.Pagination,
) ([]*domain.Location, error) {
	querier := database.GetTx(ctx, m.db)

	stmt := `SELECT id, name, description, category, latitude, longitude, address, city, country, image_url, rating, review_count, created_by, created_at, updated_at
			 FROM locations
			 WHERE (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)
			   AND (? = '' OR category = ?)
			   AND (? = '' OR LOWER(city) = ?)
			   AND rating >= ?
			 ORDER BY rating DESC, review_count DESC
			 LIMIT ? OFFSET ?`

	pattern := "%" + strings.ToLower(query) + "%"
	city := strings.ToLower(filters.City)
	offset := (pagination.Page - 1) * pagination.Limit

	rows, err := querier.QueryContext(
		ctx,
		stmt,
		pattern,
		pattern,
		filters.Category,
		filters.Category,
		city,
		city,
		filters.MinRating,
		pagination.Limit,
		offset,
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to search locations")
	}
	defer rows.Close()

	return collectMySQLLocations(rows)
}

// FindNearby returns locations within radiusKm of the origin, closest first.
// Distance is the haversine great-circle distance computed in SQL.
func (m *MySQLLocationRepository) FindNearby(
	ctx context.Context,
	origin domain.Coordinates,
	radiusKm float64,
	limit int,
) ([]*domain.Location, error) {
	querier := database.GetTx(ctx, m.db)

	stmt := `SELECT id, name, description, category, latitude, longitude, address, city, country, image_url, rating, review_count, created_by, created_at, updated_at
			 FROM (
				 SELECT l.*,
					 6371.0 * 2 * ASIN(SQRT(
						 POW(SIN(RADIANS(latitude - ?) / 2), 2) +
						 COS(RADIANS(?)) * COS(RADIANS(latitude)) *
						 POW(SIN(RADIANS(longitude - ?) / 2), 2)
					 )) AS distance_km
				 FROM locations l
			 ) AS nearby
			 WHERE distance_km <= ?
			 ORDER BY distance_km
			 LIMIT ?`

	rows, err := querier.QueryContext(
		ctx,
		stmt,
		origin.Latitude(),
		origin.Latitude(),
		origin.Longitude(),
		radiusKm,
		limit,
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to find nearby locations")
	}
	defer rows.Close()

	return collectMySQLLocations(rows)
}

func scanMySQLLocation(row rowScanner) (*domain.Location, error) {
	var (
		location  domain.Location
		id        []byte
		createdBy []byte
		latitude  float64
		longitude float64
	)
	err := row.Scan(
		&id,
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
		&createdBy,
		&location.CreatedAt,
		&location.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := location.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal location id")
	}
	if err := location.CreatedBy.UnmarshalBinary(createdBy); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal creator id")
	}

	coordinates, err := domain.NewCoordinates(latitude, longitude)
	if err != nil {
		return nil, apperrors.Wrap(err, "stored coordinates are invalid")
	}
	location.Coordinates = coordinates

	return &location, nil
}

func collectMySQLLocations(rows *sql.Rows) ([]*domain.Location, error) {
	locations := []*domain.Location{}
	for rows.Next() {
		location, err := scanMySQLLocation(rows)
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
