// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/allisson/places/internal/config"
	"github.com/allisson/places/internal/database"
	favoriteHTTP "github.com/allisson/places/internal/favorite/http"
	favoriteUsecase "github.com/allisson/places/internal/favorite/usecase"
	"github.com/allisson/places/internal/filestorage"
	"github.com/allisson/places/internal/geolocation"
	"github.com/allisson/places/internal/http"
	locationDomain "github.com/allisson/places/internal/location/domain"
	locationHTTP "github.com/allisson/places/internal/location/http"
	locationUsecase "github.com/allisson/places/internal/location/usecase"
	"github.com/allisson/places/internal/metrics"
	reviewHTTP "github.com/allisson/places/internal/review/http"
	reviewUsecase "github.com/allisson/places/internal/review/usecase"
	"github.com/allisson/places/internal/storage"
	userHTTP "github.com/allisson/places/internal/user/http"
	userService "github.com/allisson/places/internal/user/service"
	userUsecase "github.com/allisson/places/internal/user/usecase"
)

// geolocationWatchInterval controls how often the static provider re-delivers
// the fallback position to watchers.
const geolocationWatchInterval = 30 * time.Second

// fullUserRepository joins the profile-facing and credential-facing views of
// the user store. The concrete repositories implement both.
type fullUserRepository interface {
	userService.UserRepository
	userUsecase.UserRepository
}

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	redisClient     *redis.Client
	store           storage.Store
	blobStorage     *filestorage.BlobStorage
	geoProvider     geolocation.Provider
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Managers
	txManager database.TxManager

	// Services
	tokenService userService.TokenService
	authService  userUsecase.AuthPort

	// Repositories
	userRepo     fullUserRepository
	sessionRepo  userService.SessionRepository
	locationRepo locationUsecase.LocationRepository
	reviewRepo   reviewUsecase.ReviewRepository
	favoriteRepo favoriteUsecase.FavoriteRepository

	// Handlers
	userHandler     *userHTTP.UserHandler
	locationHandler *locationHTTP.LocationHandler
	reviewHandler   *reviewHTTP.ReviewHandler
	favoriteHandler *favoriteHTTP.FavoriteHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	txManagerInit       sync.Once
	storeInit           sync.Once
	blobStorageInit     sync.Once
	geoProviderInit     sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	tokenServiceInit    sync.Once
	authServiceInit     sync.Once
	userRepoInit        sync.Once
	sessionRepoInit     sync.Once
	locationRepoInit    sync.Once
	reviewRepoInit      sync.Once
	favoriteRepoInit    sync.Once
	userHandlerInit     sync.Once
	locationHandlerInit sync.Once
	reviewHandlerInit   sync.Once
	favoriteHandlerInit sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// Store returns the key-value store backing session state and the location
// cache. It is redis-backed when enabled in configuration, in-memory otherwise.
func (c *Container) Store() (storage.Store, error) {
	var err error
	c.storeInit.Do(func() {
		c.store, err = c.initStore()
		if err != nil {
			c.initErrors["store"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["store"]; exists {
		return nil, storedErr
	}
	return c.store, nil
}

// FileStorage returns the blob storage used for uploaded photos.
func (c *Container) FileStorage() (filestorage.FileStorage, error) {
	var err error
	c.blobStorageInit.Do(func() {
		c.blobStorage, err = c.initBlobStorage()
		if err != nil {
			c.initErrors["blobStorage"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["blobStorage"]; exists {
		return nil, storedErr
	}
	return c.blobStorage, nil
}

// GeolocationProvider returns the position source used when a request carries
// no coordinates.
func (c *Container) GeolocationProvider() (geolocation.Provider, error) {
	var err error
	c.geoProviderInit.Do(func() {
		c.geoProvider, err = c.initGeolocationProvider()
		if err != nil {
			c.initErrors["geoProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["geoProvider"]; exists {
		return nil, storedErr
	}
	return c.geoProvider, nil
}

// MetricsProvider returns the OpenTelemetry metrics provider.
// It returns nil when metrics collection is disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. It is a no-op
// implementation when metrics collection is disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// TokenService returns the JWT token service.
func (c *Container) TokenService() userService.TokenService {
	c.tokenServiceInit.Do(func() {
		c.tokenService = userService.NewTokenService(
			c.config.JWTAccessSecret,
			c.config.JWTRefreshSecret,
			c.config.JWTAccessExpiration,
			c.config.JWTRefreshExpiration,
		)
	})
	return c.tokenService
}

// HTTPServer returns the API server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server instance.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Shutdown HTTP servers if initialized
	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}
	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	// Flush pending metric readers if initialized
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Close the blob bucket if initialized
	if c.blobStorage != nil {
		if err := c.blobStorage.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("blob storage close: %w", err))
		}
	}

	// Close the redis client if initialized
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("redis close: %w", err))
		}
	}

	// Close database connection if initialized
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

// initStore creates the key-value store based on configuration.
func (c *Container) initStore() (storage.Store, error) {
	if !c.config.RedisEnabled {
		return storage.NewMemoryStore(), nil
	}

	c.redisClient = storage.NewRedisClient(
		c.config.RedisAddr,
		c.config.RedisPassword,
		c.config.RedisDB,
	)
	return storage.NewRedisStore(c.redisClient, "places"), nil
}

// initBlobStorage opens the configured blob bucket.
func (c *Container) initBlobStorage() (*filestorage.BlobStorage, error) {
	blobStorage, err := filestorage.OpenBucket(
		context.Background(),
		c.config.BlobBucketURL,
		c.config.BlobPublicBaseURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob bucket: %w", err)
	}
	return blobStorage, nil
}

// initGeolocationProvider creates the static provider for the configured
// fallback position.
func (c *Container) initGeolocationProvider() (geolocation.Provider, error) {
	origin, err := locationDomain.NewCoordinates(
		c.config.FallbackLatitude,
		c.config.FallbackLongitude,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid fallback position: %w", err)
	}
	return geolocation.NewStaticProvider(origin, geolocationWatchInterval), nil
}

// initMetricsProvider creates the metrics provider when metrics are enabled.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(
		provider.MeterProvider(),
		c.config.MetricsNamespace,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initHTTPServer creates the API server with the full route table.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	registerRoutes, err := c.buildRegisterRoutes()
	if err != nil {
		return nil, err
	}

	routerConfig := http.RouterConfig{
		CORSEnabled:      c.config.CORSEnabled,
		CORSAllowOrigins: c.config.CORSAllowOrigins,
		RegisterRoutes:   registerRoutes,
	}
	if provider != nil {
		routerConfig.MetricsMiddleware = metrics.HTTPMetricsMiddleware(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
		)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(routerConfig)

	return server, nil
}

// initMetricsServer creates the metrics server.
func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}

	return http.NewMetricsServer(
		c.config.ServerHost,
		c.config.MetricsPort,
		c.Logger(),
		provider,
	), nil
}
