package app

import (
	"fmt"

	favoriteHTTP "github.com/allisson/places/internal/favorite/http"
	favoriteRepository "github.com/allisson/places/internal/favorite/repository"
	favoriteUsecase "github.com/allisson/places/internal/favorite/usecase"
)

// FavoriteRepository returns the favorite repository based on database driver.
func (c *Container) FavoriteRepository() (favoriteUsecase.FavoriteRepository, error) {
	var err error
	c.favoriteRepoInit.Do(func() {
		c.favoriteRepo, err = c.initFavoriteRepository()
		if err != nil {
			c.initErrors["favoriteRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["favoriteRepo"]; exists {
		return nil, storedErr
	}
	return c.favoriteRepo, nil
}

// FavoriteHandler returns the HTTP handler for favorite operations.
func (c *Container) FavoriteHandler() (*favoriteHTTP.FavoriteHandler, error) {
	var err error
	c.favoriteHandlerInit.Do(func() {
		c.favoriteHandler, err = c.initFavoriteHandler()
		if err != nil {
			c.initErrors["favoriteHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["favoriteHandler"]; exists {
		return nil, storedErr
	}
	return c.favoriteHandler, nil
}

// initFavoriteRepository creates the favorite repository instance.
func (c *Container) initFavoriteRepository() (favoriteUsecase.FavoriteRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for favorite repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return favoriteRepository.NewMySQLFavoriteRepository(db), nil
	case "postgres":
		return favoriteRepository.NewPostgreSQLFavoriteRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initFavoriteHandler creates the favorite handler with metrics-wrapped use cases.
func (c *Container) initFavoriteHandler() (*favoriteHTTP.FavoriteHandler, error) {
	favoriteRepo, err := c.FavoriteRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite repository for favorite handler: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for favorite handler: %w", err)
	}

	return favoriteHTTP.NewFavoriteHandler(
		favoriteUsecase.NewToggleFavoriteWithMetrics(
			favoriteUsecase.NewToggleFavoriteUseCase(favoriteRepo),
			businessMetrics,
		),
		favoriteUsecase.NewListFavoritesWithMetrics(
			favoriteUsecase.NewListFavoritesUseCase(favoriteRepo),
			businessMetrics,
		),
		c.Logger(),
	), nil
}
