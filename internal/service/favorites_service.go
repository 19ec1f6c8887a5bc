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

// FavoritesService manages a user's favorite tools. Mutations return the
// resulting favorites id list.
type FavoritesService interface {
	Add(ctx context.Context, userID, toolID uuid.UUID) ([]uuid.UUID, error)
	Remove(ctx context.Context, userID, toolID uuid.UUID) ([]uuid.UUID, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Tool, error)
}

type favoritesService struct {
	favorites repository.FavoriteRepository
	tools     repository.ToolRepository
}

// NewFavoritesService builds a FavoritesService.
func NewFavoritesService(favorites repository.FavoriteRepository, tools repository.ToolRepository) FavoritesService {
	return &favoritesService{favorites: favorites, tools: tools}
}

// Add favorites a tool. Adding an already-favorited tool changes nothing.
func (s *favoritesService) Add(ctx context.Context, userID, toolID uuid.UUID) ([]uuid.UUID, error) {
	if _, err := s.tools.FindByID(ctx, toolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Tool not found")
		}
		return nil, apperr.Internal(err)
	}

	if err := s.favorites.Add(ctx, userID, toolID); err != nil {
		return nil, apperr.Internal(err)
	}

	ids, err := s.favorites.ListToolIDs(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return ids, nil
}

// Remove unfavorites a tool if present; absent ids are a no-op.
func (s *favoritesService) Remove(ctx context.Context, userID, toolID uuid.UUID) ([]uuid.UUID, error) {
	if err := s.favorites.Remove(ctx, userID, toolID); err != nil {
		return nil, apperr.Internal(err)
	}

	ids, err := s.favorites.ListToolIDs(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return ids, nil
}

// List resolves the user's favorites to full tool records.
func (s *favoritesService) List(ctx context.Context, userID uuid.UUID) ([]model.Tool, error) {
	tools, err := s.favorites.ListTools(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return tools, nil
}
