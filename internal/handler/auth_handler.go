package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"toolhub/internal/apperr"
	"toolhub/internal/auth"
	"toolhub/internal/response"
	"toolhub/internal/service"
)

// AuthHandler handles signup, login, federated login and signout.
type AuthHandler struct {
	authService  service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieSecure: cookieSecure}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleRequest represents a federated login callback payload.
type GoogleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required"`
	Avatar   string `json:"avatar"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("all fields are required")
	}
	if err := c.Validate(&req); err != nil {
		return apperr.Validation("all fields are required")
	}

	user, err := h.authService.Signup(c.Request().Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, user, "Signup successful")
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("all fields are required")
	}
	if err := c.Validate(&req); err != nil {
		return apperr.Validation("all fields are required")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(auth.SessionCookie(token, h.cookieSecure))
	return response.JSON(c, http.StatusOK, user, "Login successful")
}

// Google godoc
// @Summary Federated login via a trusted identity provider
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleRequest true "Provider identity"
// @Success 200 {object} response.Envelope
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /auth/google [post]
func (h *AuthHandler) Google(c echo.Context) error {
	var req GoogleRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("Email and full name are required")
	}
	if err := c.Validate(&req); err != nil {
		return apperr.Validation("Email and full name are required")
	}

	token, user, created, err := h.authService.FederatedLogin(c.Request().Context(), req.Email, req.FullName, req.Avatar)
	if err != nil {
		return err
	}

	c.SetCookie(auth.SessionCookie(token, h.cookieSecure))
	if created {
		return response.JSON(c, http.StatusCreated, user, "User created and logged in")
	}
	return response.JSON(c, http.StatusOK, user, "Login successful")
}

// Signout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	if cookie, err := c.Cookie(auth.SessionCookieName); err == nil {
		h.authService.Signout(c.Request().Context(), cookie.Value)
	}
	c.SetCookie(auth.ExpiredSessionCookie(h.cookieSecure))
	return response.JSON(c, http.StatusOK, nil, "Signout successful")
}
