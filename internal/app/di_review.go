package app

import (
	"fmt"

	reviewHTTP "github.com/allisson/places/internal/review/http"
	reviewRepository "github.com/allisson/places/internal/review/repository"
	reviewUsecase "github.com/allisson/places/internal/review/usecase"
)

// ReviewRepository returns the review repository based on database driver.
func (c *Container) ReviewRepository() (reviewUsecase.ReviewRepository, error) {
	var err error
	c.reviewRepoInit.Do(func() {
		c.reviewRepo, err = c.initReviewRepository()
		if err != nil {
			c.initErrors["reviewRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["reviewRepo"]; exists {
		return nil, storedErr
	}
	return c.reviewRepo, nil
}

// ReviewHandler returns the HTTP handler for review operations.
func (c *Container) ReviewHandler() (*reviewHTTP.ReviewHandler, error) {
	var err error
	c.reviewHandlerInit.Do(func() {
		c.reviewHandler, err = c.initReviewHandler()
		if err != nil {
			c.initErrors["reviewHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["reviewHandler"]; exists {
		return nil, storedErr
	}
	return c.reviewHandler, nil
}

// initReviewRepository creates the review repository instance.
func (c *Container) initReviewRepository() (reviewUsecase.ReviewRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for review repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return reviewRepository.NewMySQLReviewRepository(db), nil
	case "postgres":
		return reviewRepository.NewPostgreSQLReviewRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initReviewHandler creates the review handler with metrics-wrapped use cases.
func (c *Container) initReviewHandler() (*reviewHTTP.ReviewHandler, error) {
	reviewRepo, err := c.ReviewRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get review repository for review handler: %w", err)
	}

	fileStorage, err := c.FileStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to get file storage for review handler: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for review handler: %w", err)
	}

	return reviewHTTP.NewReviewHandler(
		reviewUsecase.NewCreateReviewWithMetrics(
			reviewUsecase.NewCreateReviewUseCase(reviewRepo),
			businessMetrics,
		),
		reviewUsecase.NewGetLocationReviewsWithMetrics(
			reviewUsecase.NewGetLocationReviewsUseCase(reviewRepo),
			businessMetrics,
		),
		fileStorage,
		c.Logger(),
	), nil
}
