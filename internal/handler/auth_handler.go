package handler

import (
	"net/http"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"prodcat/internal/errors"
	"prodcat/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "user registered successfully",
		"user":    user,
	})
}

// Login godoc
// @Summary Login and receive an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	accessToken, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, LoginResponse{AccessToken: accessToken})
}

// Me godoc
// @Summary Return the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PublicUser
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	user, err := h.authService.ResolveIdentity(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to resolve identity",
			Code:  "INTERNAL_ERROR",
		})
	}
	if user == nil {
		// Token was valid but the subject no longer exists.
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "user not found",
			Code:  "UNAUTHORIZED",
		})
	}

	return c.JSON(http.StatusOK, user.Public())
}
