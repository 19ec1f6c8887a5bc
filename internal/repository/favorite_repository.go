package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"toolhub/internal/model"
)

// FavoriteRepository defines favorites persistence operations. Add and Remove
// are single atomic statements, so two concurrent calls for the same user
// cannot lose each other's writes.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, toolID uuid.UUID) error
	Remove(ctx context.Context, userID, toolID uuid.UUID) error
	ListToolIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListTools(ctx context.Context, userID uuid.UUID) ([]model.Tool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add inserts the favorite, silently keeping the existing row on conflict.
func (r *favoriteRepository) Add(ctx context.Context, userID, toolID uuid.UUID) error {
	fav := model.Favorite{UserID: userID, ToolID: toolID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fav).Error
}

// Remove deletes the favorite if present. Removing an absent row is a no-op.
func (r *favoriteRepository) Remove(ctx context.Context, userID, toolID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND tool_id = ?", userID, toolID).
		Delete(&model.Favorite{}).Error
}

func (r *favoriteRepository) ListToolIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var favorites []model.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.ToolID)
	}
	return ids, nil
}

// ListTools resolves the favorites to full tool records in insertion order.
func (r *favoriteRepository) ListTools(ctx context.Context, userID uuid.UUID) ([]model.Tool, error) {
	var tools []model.Tool
	if err := r.db.WithContext(ctx).
		Model(&model.Tool{}).
		Joins("JOIN favorites ON favorites.tool_id = tools.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at ASC").
		Find(&tools).Error; err != nil {
		return nil, err
	}
	return tools, nil
}
