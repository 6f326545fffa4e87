package app

import (
	"fmt"

	locationHTTP "github.com/allisson/places/internal/location/http"
	locationRepository "github.com/allisson/places/internal/location/repository"
	locationUsecase "github.com/allisson/places/internal/location/usecase"
)

// LocationRepository returns the location repository based on database driver.
// Lookups go through a cache decorator when a cache TTL is configured.
func (c *Container) LocationRepository() (locationUsecase.LocationRepository, error) {
	var err error
	c.locationRepoInit.Do(func() {
		c.locationRepo, err = c.initLocationRepository()
		if err != nil {
			c.initErrors["locationRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["locationRepo"]; exists {
		return nil, storedErr
	}
	return c.locationRepo, nil
}

// LocationHandler returns the HTTP handler for location discovery operations.
func (c *Container) LocationHandler() (*locationHTTP.LocationHandler, error) {
	var err error
	c.locationHandlerInit.Do(func() {
		c.locationHandler, err = c.initLocationHandler()
		if err != nil {
			c.initErrors["locationHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["locationHandler"]; exists {
		return nil, storedErr
	}
	return c.locationHandler, nil
}

// initLocationRepository creates the location repository instance.
func (c *Container) initLocationRepository() (locationUsecase.LocationRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for location repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	var repo locationUsecase.LocationRepository
	switch c.config.DBDriver {
	case "mysql":
		repo = locationRepository.NewMySQLLocationRepository(db)
	case "postgres":
		repo = locationRepository.NewPostgreSQLLocationRepository(db)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	if c.config.CacheTTL <= 0 {
		return repo, nil
	}

	store, err := c.Store()
	if err != nil {
		return nil, fmt.Errorf("failed to get store for location repository: %w", err)
	}
	return locationRepository.NewCachedLocationRepository(repo, store, c.config.CacheTTL), nil
}

// initLocationHandler creates the location handler with metrics-wrapped use cases.
func (c *Container) initLocationHandler() (*locationHTTP.LocationHandler, error) {
	locationRepo, err := c.LocationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get location repository for location handler: %w", err)
	}

	geoProvider, err := c.GeolocationProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get geolocation provider for location handler: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for location handler: %w", err)
	}

	return locationHTTP.NewLocationHandler(
		locationUsecase.NewSearchLocationsWithMetrics(
			locationUsecase.NewSearchLocationsUseCase(locationRepo),
			businessMetrics,
		),
		locationUsecase.NewGetNearbyLocationsWithMetrics(
			locationUsecase.NewGetNearbyLocationsUseCase(locationRepo),
			businessMetrics,
		),
		locationUsecase.NewGetLocationDetailWithMetrics(
			locationUsecase.NewGetLocationDetailUseCase(locationRepo),
			businessMetrics,
		),
		locationUsecase.NewCreateLocationWithMetrics(
			locationUsecase.NewCreateLocationUseCase(locationRepo),
			businessMetrics,
		),
		geoProvider,
		c.Logger(),
	), nil
}
