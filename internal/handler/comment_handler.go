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

// CommentHandler handles threaded comments on tools.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateCommentRequest carries a new comment; parentId makes it a reply.
type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required"`
	ParentID string `json:"parentId"`
}

// Create godoc
// @Summary Comment on a tool
// @Tags comments
// @Accept json
// @Produce json
// @Param toolId path string true "Tool ID"
// @Param request body CreateCommentRequest true "Comment"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tools/{toolId}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return apperr.NotFound("User not found")
	}

	toolID, err := uuid.Parse(c.Param("toolId"))
	if err != nil {
		return apperr.Validation("invalid tool id")
	}

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("Content is required")
	}
	if err := c.Validate(&req); err != nil {
		return apperr.Validation("Content is required")
	}

	var parentID *uuid.UUID
	if req.ParentID != "" {
		parsed, err := uuid.Parse(req.ParentID)
		if err != nil {
			return apperr.Validation("invalid parent comment id")
		}
		parentID = &parsed
	}

	comment, err := h.commentService.Create(c.Request().Context(), user.ID, toolID, req.Content, parentID)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, comment, "Comment added")
}

// List godoc
// @Summary List a tool's comment thread
// @Tags comments
// @Produce json
// @Param toolId path string true "Tool ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /tools/{toolId}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	toolID, err := uuid.Parse(c.Param("toolId"))
	if err != nil {
		return apperr.Validation("invalid tool id")
	}

	comments, err := h.commentService.ListByTool(c.Request().Context(), toolID)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, echo.Map{"comments": comments}, "Fetched comments")
}
