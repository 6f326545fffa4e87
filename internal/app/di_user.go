package app

import (
	"fmt"

	userHTTP "github.com/allisson/places/internal/user/http"
	userRepository "github.com/allisson/places/internal/user/repository"
	userService "github.com/allisson/places/internal/user/service"
	userUsecase "github.com/allisson/places/internal/user/usecase"
)

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (userUsecase.UserRepository, error) {
	var err error
	c.userRepoInit.Do(func() {
		c.userRepo, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// SessionRepository returns the session repository based on database driver.
func (c *Container) SessionRepository() (userService.SessionRepository, error) {
	var err error
	c.sessionRepoInit.Do(func() {
		c.sessionRepo, err = c.initSessionRepository()
		if err != nil {
			c.initErrors["sessionRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionRepo"]; exists {
		return nil, storedErr
	}
	return c.sessionRepo, nil
}

// AuthService returns the authentication backend.
func (c *Container) AuthService() (userUsecase.AuthPort, error) {
	var err error
	c.authServiceInit.Do(func() {
		c.authService, err = c.initAuthService()
		if err != nil {
			c.initErrors["authService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authService"]; exists {
		return nil, storedErr
	}
	return c.authService, nil
}

// UserHandler returns the HTTP handler for account and profile operations.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	var err error
	c.userHandlerInit.Do(func() {
		c.userHandler, err = c.initUserHandler()
		if err != nil {
			c.initErrors["userHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userHandler"]; exists {
		return nil, storedErr
	}
	return c.userHandler, nil
}

// initUserRepository creates the user repository instance.
func (c *Container) initUserRepository() (fullUserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initSessionRepository creates the session repository instance.
func (c *Container) initSessionRepository() (userService.SessionRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for session repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return userRepository.NewMySQLSessionRepository(db), nil
	case "postgres":
		return userRepository.NewPostgreSQLSessionRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAuthService creates the auth service with all its dependencies.
func (c *Container) initAuthService() (userUsecase.AuthPort, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for auth service: %w", err)
	}

	if _, err := c.UserRepository(); err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth service: %w", err)
	}

	sessionRepo, err := c.SessionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get session repository for auth service: %w", err)
	}

	store, err := c.Store()
	if err != nil {
		return nil, fmt.Errorf("failed to get store for auth service: %w", err)
	}

	return userService.NewAuthService(
		txManager,
		c.userRepo,
		sessionRepo,
		userService.NewPasswordHasher(),
		c.TokenService(),
		store,
		c.Logger(),
	), nil
}

// initUserHandler creates the user handler with metrics-wrapped use cases.
func (c *Container) initUserHandler() (*userHTTP.UserHandler, error) {
	authService, err := c.AuthService()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth service for user handler: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user handler: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for user handler: %w", err)
	}

	return userHTTP.NewUserHandler(
		userUsecase.NewLoginWithMetrics(userUsecase.NewLoginUseCase(authService), businessMetrics),
		userUsecase.NewRegisterWithMetrics(userUsecase.NewRegisterUseCase(authService), businessMetrics),
		userUsecase.NewLogoutWithMetrics(userUsecase.NewLogoutUseCase(authService), businessMetrics),
		userUsecase.NewForgotPasswordWithMetrics(userUsecase.NewForgotPasswordUseCase(authService), businessMetrics),
		userUsecase.NewOAuthLoginWithMetrics(userUsecase.NewOAuthLoginUseCase(authService), businessMetrics),
		userUsecase.NewGetProfileWithMetrics(userUsecase.NewGetProfileUseCase(userRepo), businessMetrics),
		userUsecase.NewUpdateProfileWithMetrics(userUsecase.NewUpdateProfileUseCase(userRepo), businessMetrics),
		authService,
		c.Logger(),
	), nil
}
