// Package http provides HTTP handlers for location discovery: text search,
// nearby lookup, detail retrieval, and place registration.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/geolocation"
	"github.com/allisson/places/internal/httputil"
	"github.com/allisson/places/internal/location/http/dto"
	locationUseCase "github.com/allisson/places/internal/location/usecase"
	userHTTP "github.com/allisson/places/internal/user/http"
	customValidation "github.com/allisson/places/internal/validation"
)

const (
	defaultRadiusKm    = 5.0
	defaultNearbyLimit = 50
	maxNearbyLimit     = 100
)

// LocationHandler handles HTTP requests for location discovery operations.
// The geolocation provider supplies a fallback origin for nearby lookups
// when the request carries no coordinates.
type LocationHandler struct {
	searchUseCase locationUseCase.SearchLocationsExecutor
	nearbyUseCase locationUseCase.GetNearbyLocationsExecutor
	detailUseCase locationUseCase.GetLocationDetailExecutor
	createUseCase locationUseCase.CreateLocationExecutor
	geolocation   geolocation.Provider
	logger        *slog.Logger
}

// NewLocationHandler creates a new location handler with required dependencies.
func NewLocationHandler(
	searchUseCase locationUseCase.SearchLocationsExecutor,
	nearbyUseCase locationUseCase.GetNearbyLocationsExecutor,
	detailUseCase locationUseCase.GetLocationDetailExecutor,
	createUseCase locationUseCase.CreateLocationExecutor,
	geolocationProvider geolocation.Provider,
	logger *slog.Logger,
) *LocationHandler {
	return &LocationHandler{
		searchUseCase: searchUseCase,
		nearbyUseCase: nearbyUseCase,
		detailUseCase: detailUseCase,
		createUseCase: createUseCase,
		geolocation:   geolocationProvider,
		logger:        logger,
	}
}

// SearchHandler searches locations by free text with optional filters.
// GET /v1/locations/search?q=...&category=...&city=...&min_rating=...&page=...&limit=...
// Returns 200 OK with a page of matches ordered by rating.
func (h *LocationHandler) SearchHandler(c *gin.Context) {
	page, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	minRating := 0.0
	if raw := c.Query("min_rating"); raw != "" {
		minRating, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			httputil.HandleValidationErrorGin(
				c,
				fmt.Errorf("invalid min_rating parameter: must be a number"),
				h.logger,
			)
			return
		}
	}

	res := h.searchUseCase.Execute(c.Request.Context(), locationUseCase.SearchLocationsInput{
		Query:     c.Query("q"),
		Category:  c.Query("category"),
		City:      c.Query("city"),
		MinRating: minRating,
		Page:      page,
		Limit:     limit,
	})
	if !res.Success() {
		httputil.HandleErrorGin(c, res.Err(), h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ListLocationsResponse{
		Data:  dto.MapLocationsToResponse(res.Data()),
		Page:  page,
		Limit: limit,
	})
}

// NearbyHandler lists locations within a radius of an origin.
// GET /v1/locations/nearby?latitude=...&longitude=...&radius_km=...&limit=...
// When the request carries no coordinates the configured geolocation
// provider supplies the origin.
// Returns 200 OK with locations ordered by distance.
func (h *LocationHandler) NearbyHandler(c *gin.Context) {
	latitude, longitude, err := h.resolveOrigin(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	radiusKm := defaultRadiusKm
	if raw := c.Query("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm <= 0 {
			httputil.HandleValidationErrorGin(
				c,
				fmt.Errorf("invalid radius_km parameter: must be a positive number"),
				h.logger,
			)
			return
		}
	}

	limit := defaultNearbyLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxNearbyLimit {
			httputil.HandleValidationErrorGin(
				c,
				fmt.Errorf("invalid limit parameter: must be between 1 and %d", maxNearbyLimit),
				h.logger,
			)
			return
		}
	}

	locations, err := h.nearbyUseCase.Execute(c.Request.Context(), locationUseCase.GetNearbyLocationsInput{
		Latitude:  latitude,
		Longitude: longitude,
		RadiusKm:  radiusKm,
		Limit:     limit,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.MapLocationsToResponse(locations)})
}

// DetailHandler retrieves a location by id.
// GET /v1/locations/:id
// Returns 200 OK with the location, 404 if it does not exist.
func (h *LocationHandler) DetailHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid location id: must be a UUID"),
			h.logger,
		)
		return
	}

	res := h.detailUseCase.Execute(c.Request.Context(), id)
	if !res.Success() {
		httputil.HandleErrorGin(c, res.Err(), h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLocationToResponse(res.Data()))
}

// CreateHandler registers a new place.
// POST /v1/locations - Requires authentication.
// Returns 201 Created with the stored location.
func (h *LocationHandler) CreateHandler(c *gin.Context) {
	userID, ok := userHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	res := h.createUseCase.Execute(c.Request.Context(), locationUseCase.CreateLocationInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		ImageURL:    req.ImageURL,
		CreatedBy:   userID,
	})
	if !res.Success() {
		httputil.HandleErrorGin(c, res.Err(), h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapLocationToResponse(res.Data()))
}

// resolveOrigin reads the origin from the query string, falling back to the
// geolocation provider when both coordinates are absent.
func (h *LocationHandler) resolveOrigin(c *gin.Context) (float64, float64, error) {
	rawLatitude := c.Query("latitude")
	rawLongitude := c.Query("longitude")

	if rawLatitude == "" && rawLongitude == "" {
		res := h.geolocation.CurrentPosition(c.Request.Context())
		if !res.Success() {
			return 0, 0, res.Err()
		}
		position := res.Data()
		return position.Coordinates.Latitude(), position.Coordinates.Longitude(), nil
	}

	latitude, err := strconv.ParseFloat(rawLatitude, 64)
	if err != nil {
		return 0, 0, apperrors.Validation(
			apperrors.CodeInvalidCoordinates, "invalid latitude parameter",
		)
	}

	longitude, err := strconv.ParseFloat(rawLongitude, 64)
	if err != nil {
		return 0, 0, apperrors.Validation(
			apperrors.CodeInvalidCoordinates, "invalid longitude parameter",
		)
	}

	return latitude, longitude, nil
}
