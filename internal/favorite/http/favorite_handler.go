// Package http provides HTTP handlers for toggling and listing favorites.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/favorite/http/dto"
	favoriteUseCase "github.com/allisson/places/internal/favorite/usecase"
	"github.com/allisson/places/internal/httputil"
	userHTTP "github.com/allisson/places/internal/user/http"
)

// FavoriteHandler handles HTTP requests for favorite operations.
type FavoriteHandler struct {
	toggleUseCase favoriteUseCase.ToggleFavoriteExecutor
	listUseCase   favoriteUseCase.ListFavoritesExecutor
	logger        *slog.Logger
}

// NewFavoriteHandler creates a new favorite handler with required dependencies.
func NewFavoriteHandler(
	toggleUseCase favoriteUseCase.ToggleFavoriteExecutor,
	listUseCase favoriteUseCase.ListFavoritesExecutor,
	logger *slog.Logger,
) *FavoriteHandler {
	return &FavoriteHandler{
		toggleUseCase: toggleUseCase,
		listUseCase:   listUseCase,
		logger:        logger,
	}
}

// ToggleHandler flips the favorite state of a location for the caller.
// POST /v1/locations/:id/favorite - Requires authentication.
// Returns 200 OK with the new state: {"is_favorite": true|false}.
func (h *FavoriteHandler) ToggleHandler(c *gin.Context) {
	userID, ok := userHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid location id: must be a UUID"),
			h.logger,
		)
		return
	}

	res := h.toggleUseCase.Execute(c.Request.Context(), userID, locationID)
	if !res.Success() {
		httputil.HandleErrorGin(c, res.Err(), h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_favorite": res.Data()})
}

// ListHandler lists the caller's favorites, newest first.
// GET /v1/favorites - Requires authentication.
func (h *FavoriteHandler) ListHandler(c *gin.Context) {
	userID, ok := userHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	res := h.listUseCase.Execute(c.Request.Context(), userID)
	if !res.Success() {
		httputil.HandleErrorGin(c, res.Err(), h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.MapFavoritesToResponse(res.Data())})
}
