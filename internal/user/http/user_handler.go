package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/places/internal/httputil"
	userDomain "github.com/allisson/places/internal/user/domain"
	"github.com/allisson/places/internal/user/http/dto"
	userUseCase "github.com/allisson/places/internal/user/usecase"
	customValidation "github.com/allisson/places/internal/validation"
)

// UserHandler handles HTTP requests for accounts, sessions, and profiles.
type UserHandler struct {
	loginUseCase          userUseCase.LoginExecutor
	registerUseCase       userUseCase.RegisterExecutor
	logoutUseCase         userUseCase.LogoutExecutor
	forgotPasswordUseCase userUseCase.ForgotPasswordExecutor
	oauthLoginUseCase     userUseCase.OAuthLoginExecutor
	getProfileUseCase     userUseCase.GetProfileExecutor
	updateProfileUseCase  userUseCase.UpdateProfileExecutor
	authPort              userUseCase.AuthPort
	logger                *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(
	loginUseCase userUseCase.LoginExecutor,
	registerUseCase userUseCase.RegisterExecutor,
	logoutUseCase userUseCase.LogoutExecutor,
	forgotPasswordUseCase userUseCase.ForgotPasswordExecutor,
	oauthLoginUseCase userUseCase.OAuthLoginExecutor,
	getProfileUseCase userUseCase.GetProfileExecutor,
	updateProfileUseCase userUseCase.UpdateProfileExecutor,
	authPort userUseCase.AuthPort,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		loginUseCase:          loginUseCase,
		registerUseCase:       registerUseCase,
		logoutUseCase:         logoutUseCase,
		forgotPasswordUseCase: forgotPasswordUseCase,
		oauthLoginUseCase:     oauthLoginUseCase,
		getProfileUseCase:     getProfileUseCase,
		updateProfileUseCase:  updateProfileUseCase,
		authPort:              authPort,
		logger:                logger,
	}
}

// RegisterHandler creates a new account and signs the user in.
// POST /v1/auth/register
// Returns 201 Created with the session token pair.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	res := h.registerUseCase.Execute(c.Request.Context(), userUseCase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	})
	if !res.Success() {
		httputil.HandleErrorGin(c, res.Err(), h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapSessionToResponse(res.Data()))
}

// LoginHandler authenticates a user with email and password.
// POST /v1/auth/login
// Returns 200 OK with the session token pair.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	res := h.loginUseCase.Execute(c.Request.Context(), userUseCase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if !res.Success() {
		httputil.HandleErrorGin(c, res.Err(), h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSessionToResponse(res.Data()))
}

// LogoutHandler revokes the caller's session.
// POST /v1/auth/logout - Requires authentication.
// Returns 204 No Content.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	res := h.logoutUseCase.Execute(c.Request.Context())
	if !res.Success() {
		httputil.HandleErrorGin(c, res.Err(), h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// ForgotPasswordHandler requests a password reset email.
// POST /v1/auth/forgot-password
// Returns 202 Accepted regardless of whether the email is registered, so the
// endpoint cannot be used to probe for accounts.
func (h *UserHandler) ForgotPasswordHandler(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	res := h.forgotPasswordUseCase.Execute(c.Request.Context(), userUseCase.ForgotPasswordInput{
		Email: req.Email,
	})
	if !res.Success() {
		httputil.HandleErrorGin(c, res.Err(), h.logger)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "If the email is registered, a reset link has been sent",
	})
}

// OAuthLoginHandler signs a user in through an external identity provider.
// POST /v1/auth/oauth
// Returns 200 OK with the session token pair.
func (h *UserHandler) OAuthLoginHandler(c *gin.Context) {
	var req dto.OAuthLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	res := h.oauthLoginUseCase.Execute(c.Request.Context(), userDomain.OAuthProvider(req.Provider))
	if !res.Success() {
		httputil.HandleErrorGin(c, res.Err(), h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSessionToResponse(res.Data()))
}

// RefreshHandler rotates a session using a refresh token.
// POST /v1/auth/refresh
// Returns 200 OK with a fresh token pair. The old refresh token is revoked.
func (h *UserHandler) RefreshHandler(c *gin.Context) {
	var req dto.RefreshSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	session, err := h.authPort.RefreshSession(c.Request.Context(), req.RefreshToken)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSessionToResponse(session))
}

// GetProfileHandler returns the caller's profile.
// GET /v1/users/me - Requires authentication.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	userID, ok := GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, userDomain.ErrSessionNotFound, h.logger)
		return
	}

	res := h.getProfileUseCase.Execute(c.Request.Context(), userID)
	if !res.Success() {
		httputil.HandleErrorGin(c, res.Err(), h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(res.Data()))
}

// UpdateProfileHandler changes the caller's profile fields.
// PATCH /v1/users/me - Requires authentication.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	userID, ok := GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, userDomain.ErrSessionNotFound, h.logger)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	res := h.updateProfileUseCase.Execute(c.Request.Context(), userUseCase.UpdateProfileInput{
		UserID:    userID,
		Username:  req.Username,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
		Location:  req.Location,
	})
	if !res.Success() {
		httputil.HandleErrorGin(c, res.Err(), h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(res.Data()))
}
