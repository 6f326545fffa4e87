package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	userHTTP "github.com/allisson/places/internal/user/http"
)

// buildRegisterRoutes assembles the route registration callback for the API
// server. Routes under the authenticated group require a valid access token
// and, when enabled, are rate limited per user.
func (c *Container) buildRegisterRoutes() (func(router *gin.Engine), error) {
	logger := c.Logger()

	userHandler, err := c.UserHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get user handler for http server: %w", err)
	}

	locationHandler, err := c.LocationHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get location handler for http server: %w", err)
	}

	reviewHandler, err := c.ReviewHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get review handler for http server: %w", err)
	}

	favoriteHandler, err := c.FavoriteHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite handler for http server: %w", err)
	}

	authMiddleware := userHTTP.AuthenticationMiddleware(c.TokenService(), logger)

	var rateLimitMiddleware gin.HandlerFunc
	if c.config.RateLimitEnabled {
		rateLimitMiddleware = userHTTP.RateLimitMiddleware(
			c.config.RateLimitRequestsPerSec,
			c.config.RateLimitBurst,
			logger,
		)
	}

	return func(router *gin.Engine) {
		v1 := router.Group("/v1")

		// Public routes
		auth := v1.Group("/auth")
		auth.POST("/register", userHandler.RegisterHandler)
		auth.POST("/login", userHandler.LoginHandler)
		auth.POST("/forgot-password", userHandler.ForgotPasswordHandler)
		auth.POST("/oauth", userHandler.OAuthLoginHandler)
		auth.POST("/refresh", userHandler.RefreshHandler)

		v1.GET("/locations/search", locationHandler.SearchHandler)
		v1.GET("/locations/nearby", locationHandler.NearbyHandler)
		v1.GET("/locations/:id", locationHandler.DetailHandler)
		v1.GET("/locations/:id/reviews", reviewHandler.ListHandler)

		// Authenticated routes
		protected := v1.Group("")
		protected.Use(authMiddleware)
		if rateLimitMiddleware != nil {
			protected.Use(rateLimitMiddleware)
		}
		protected.POST("/auth/logout", userHandler.LogoutHandler)
		protected.GET("/users/me", userHandler.GetProfileHandler)
		protected.PATCH("/users/me", userHandler.UpdateProfileHandler)
		protected.POST("/locations", locationHandler.CreateHandler)
		protected.POST("/locations/:id/reviews", reviewHandler.CreateHandler)
		protected.POST("/locations/:id/favorite", favoriteHandler.ToggleHandler)
		protected.GET("/favorites", favoriteHandler.ListHandler)
	}, nil
}
