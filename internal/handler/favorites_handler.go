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

// FavoritesHandler handles the caller's favorite tools.
type FavoritesHandler struct {
	favoritesService service.FavoritesService
}

// NewFavoritesHandler creates a new favorites handler.
func NewFavoritesHandler(favoritesService service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favoritesService: favoritesService}
}

// AddFavoriteRequest carries the tool to favorite.
type AddFavoriteRequest struct {
	ToolID string `json:"toolId" validate:"required"`
}

// Add godoc
// @Summary Favorite a tool
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body AddFavoriteRequest true "Tool to favorite"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /favorites [post]
func (h *FavoritesHandler) Add(c echo.Context) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return apperr.NotFound("User not found")
	}

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("Tool ID is required")
	}
	if err := c.Validate(&req); err != nil {
		return apperr.Validation("Tool ID is required")
	}
	toolID, err := uuid.Parse(req.ToolID)
	if err != nil {
		return apperr.Validation("invalid tool id")
	}

	ids, err := h.favoritesService.Add(c.Request().Context(), user.ID, toolID)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, echo.Map{"favorites": ids}, "Favorite added")
}

// Remove godoc
// @Summary Unfavorite a tool
// @Tags favorites
// @Produce json
// @Param toolId path string true "Tool ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /favorites/{toolId} [delete]
func (h *FavoritesHandler) Remove(c echo.Context) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return apperr.NotFound("User not found")
	}

	toolID, err := uuid.Parse(c.Param("toolId"))
	if err != nil {
		return apperr.Validation("invalid tool id")
	}

	ids, err := h.favoritesService.Remove(c.Request().Context(), user.ID, toolID)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, echo.Map{"favorites": ids}, "Favorite removed")
}

// List godoc
// @Summary List the caller's favorites with full tool records
// @Tags favorites
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /favorites [get]
func (h *FavoritesHandler) List(c echo.Context) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return apperr.NotFound("User not found")
	}

	tools, err := h.favoritesService.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, echo.Map{"favorites": tools}, "Fetched favorites")
}
