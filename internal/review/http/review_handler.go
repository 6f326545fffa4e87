// Package http provides HTTP handlers for creating and listing reviews.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/filestorage"
	"github.com/allisson/places/internal/httputil"
	"github.com/allisson/places/internal/review/http/dto"
	reviewUseCase "github.com/allisson/places/internal/review/usecase"
	userHTTP "github.com/allisson/places/internal/user/http"
	customValidation "github.com/allisson/places/internal/validation"
)

// ReviewHandler handles HTTP requests for review operations. Photo payloads
// are uploaded to file storage before the review is recorded, so the stored
// review only carries URLs.
type ReviewHandler struct {
	createUseCase reviewUseCase.CreateReviewExecutor
	listUseCase   reviewUseCase.GetLocationReviewsExecutor
	fileStorage   filestorage.FileStorage
	logger        *slog.Logger
}

// NewReviewHandler creates a new review handler with required dependencies.
func NewReviewHandler(
	createUseCase reviewUseCase.CreateReviewExecutor,
	listUseCase reviewUseCase.GetLocationReviewsExecutor,
	fileStorage filestorage.FileStorage,
	logger *slog.Logger,
) *ReviewHandler {
	return &ReviewHandler{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		fileStorage:   fileStorage,
		logger:        logger,
	}
}

// CreateHandler records a review of a location.
// POST /v1/locations/:id/reviews - Requires authentication.
// Returns 201 Created with the stored review.
func (h *ReviewHandler) CreateHandler(c *gin.Context) {
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

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	photoURLs, uploadErr := h.uploadPhotos(c, userID, req.Photos)
	if uploadErr != nil {
		httputil.HandleErrorGin(c, uploadErr, h.logger)
		return
	}

	res := h.createUseCase.Execute(c.Request.Context(), reviewUseCase.CreateReviewInput{
		LocationID: locationID,
		UserID:     userID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Photos:     photoURLs,
		Tags:       req.Tags,
	})
	if !res.Success() {
		httputil.HandleErrorGin(c, res.Err(), h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapReviewToResponse(res.Data()))
}

// ListHandler lists a location's reviews page by page.
// GET /v1/locations/:id/reviews?page=...&limit=...
// Returns 200 OK with a page of reviews, newest first.
func (h *ReviewHandler) ListHandler(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid location id: must be a UUID"),
			h.logger,
		)
		return
	}

	page, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	res := h.listUseCase.Execute(c.Request.Context(), reviewUseCase.GetLocationReviewsInput{
		LocationID: locationID,
		Page:       page,
		Limit:      limit,
	})
	if !res.Success() {
		httputil.HandleErrorGin(c, res.Err(), h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPageToResponse(res.Data(), page, limit))
}

// uploadPhotos stores each base64 photo payload concurrently and returns the
// public URLs in payload order. Any failed upload aborts the whole review.
func (h *ReviewHandler) uploadPhotos(
	c *gin.Context,
	userID uuid.UUID,
	photos []string,
) ([]string, error) {
	if len(photos) == 0 {
		return nil, nil
	}

	urls := make([]string, len(photos))
	g, ctx := errgroup.WithContext(c.Request.Context())
	for i, encoded := range photos {
		g.Go(func() error {
			objectPath := filestorage.GeneratePath(userID, fmt.Sprintf("review-photo-%d.jpg", i))
			res := h.fileStorage.UploadBase64(ctx, objectPath, encoded)
			if !res.Success() {
				return res.Err()
			}
			urls[i] = res.Data()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return urls, nil
}
