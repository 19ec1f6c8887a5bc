package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"toolhub/internal/apperr"
	"toolhub/internal/middleware"
	"toolhub/internal/response"
	"toolhub/internal/service"
)

// AdminHandler handles account administration.
type AdminHandler struct {
	userService service.UserService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(userService service.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	caller := middleware.UserFromContext(c)
	users, err := h.userService.ListAll(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return response.JSON(c, http.StatusOK, users, "Fetched all users")
}

// DeleteUser godoc
// @Summary Delete another user's account
// @Tags admin
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/users/{userId} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return apperr.Validation("invalid user id")
	}

	caller := middleware.UserFromContext(c)
	if err := h.userService.DeleteOther(c.Request().Context(), caller, targetID); err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, nil, "User deleted successfully")
}

// ToggleAdmin godoc
// @Summary Toggle a user's admin flag
// @Tags admin
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/users/{userId}/admin [patch]
func (h *AdminHandler) ToggleAdmin(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return apperr.Validation("invalid user id")
	}

	caller := middleware.UserFromContext(c)
	user, err := h.userService.ToggleAdmin(c.Request().Context(), caller, targetID)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, user, "User admin status updated")
}
