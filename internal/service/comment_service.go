package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"toolhub/internal/apperr"
	"toolhub/internal/model"
	"toolhub/internal/repository"
)

// CommentService manages threaded comments on tools.
type CommentService interface {
	Create(ctx context.Context, userID, toolID uuid.UUID, content string, parentID *uuid.UUID) (*model.Comment, error)
	// ListByTool returns the tool's top-level comments with replies nested,
	// oldest first.
	ListByTool(ctx context.Context, toolID uuid.UUID) ([]model.Comment, error)
}

type commentService struct {
	comments repository.CommentRepository
	tools    repository.ToolRepository
}

// NewCommentService builds a CommentService.
func NewCommentService(comments repository.CommentRepository, tools repository.ToolRepository) CommentService {
	return &commentService{comments: comments, tools: tools}
}

// Create stores a comment. A parent, when given, must be a comment on the
// same tool.
func (s *commentService) Create(ctx context.Context, userID, toolID uuid.UUID, content string, parentID *uuid.UUID) (*model.Comment, error) {
	if _, err := s.tools.FindByID(ctx, toolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Tool not found")
		}
		return nil, apperr.Internal(err)
	}

	if parentID != nil {
		parent, err := s.comments.FindByID(ctx, *parentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("Parent comment not found")
			}
			return nil, apperr.Internal(err)
		}
		if parent.ToolID != toolID {
			return nil, apperr.Validation("Parent comment belongs to a different tool")
		}
	}

	comment := &model.Comment{
		ToolID:   toolID,
		UserID:   userID,
		Content:  content,
		ParentID: parentID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperr.Internal(err)
	}
	return comment, nil
}

// ListByTool assembles the comment thread for a tool.
func (s *commentService) ListByTool(ctx context.Context, toolID uuid.UUID) ([]model.Comment, error) {
	flat, err := s.comments.ListByTool(ctx, toolID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return buildThread(flat), nil
}

// buildThread nests replies under their parents, preserving chronological
// order. Replies whose parent vanished surface as top-level.
func buildThread(flat []model.Comment) []model.Comment {
	present := make(map[uuid.UUID]bool, len(flat))
	for i := range flat {
		flat[i].Author = flat[i].User.Profile()
		present[flat[i].ID] = true
	}

	children := make(map[uuid.UUID][]*model.Comment)
	var roots []*model.Comment
	for i := range flat {
		c := &flat[i]
		if c.ParentID != nil && present[*c.ParentID] {
			children[*c.ParentID] = append(children[*c.ParentID], c)
			continue
		}
		roots = append(roots, c)
	}

	var materialize func(c *model.Comment) model.Comment
	materialize = func(c *model.Comment) model.Comment {
		out := *c
		kids := children[c.ID]
		if len(kids) > 0 {
			out.Replies = make([]model.Comment, 0, len(kids))
			for _, k := range kids {
				out.Replies = append(out.Replies, materialize(k))
			}
		}
		return out
	}

	out := make([]model.Comment, 0, len(roots))
	for _, r := range roots {
		out = append(out, materialize(r))
	}
	return out
}
