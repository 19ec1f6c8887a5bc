package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"toolhub/internal/apperr"
	"toolhub/internal/middleware"
	"toolhub/internal/response"
	"toolhub/internal/service"
)

// UserHandler handles the caller's own profile.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateRequest represents a profile update; any non-empty subset applies.
type UpdateRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

// Me godoc
// @Summary Get the caller's profile
// @Tags users
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		// the gate should have rejected the request already
		return apperr.NotFound("User not found")
	}
	return response.JSON(c, http.StatusOK, user.Profile(), "Fetched profile")
}

// Update godoc
// @Summary Update the caller's profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpdateRequest true "Fields to update"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/me [put]
func (h *UserHandler) Update(c echo.Context) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return apperr.NotFound("User not found")
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperr.Validation("invalid email")
	}

	updated, err := h.userService.Update(c.Request().Context(), user.ID, service.UserUpdate{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, updated, "User updated successfully")
}

// Delete godoc
// @Summary Delete the caller's account
// @Tags users
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/me [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return apperr.NotFound("user not found")
	}

	if err := h.userService.Delete(c.Request().Context(), user.ID); err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, nil, "User deleted successfully")
}
