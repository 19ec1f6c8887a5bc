package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"toolhub/internal/model"
)

// ToolRepository defines tool persistence operations.
type ToolRepository interface {
	Create(ctx context.Context, tool *model.Tool) error
	Update(ctx context.Context, tool *model.Tool) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Tool, error)
	FindByName(ctx context.Context, name string) (*model.Tool, error)
	List(ctx context.Context) ([]model.Tool, error)
}

type toolRepository struct {
	db *gorm.DB
}

// NewToolRepository creates a new tool repository.
func NewToolRepository(db *gorm.DB) ToolRepository {
	return &toolRepository{db: db}
}

func (r *toolRepository) Create(ctx context.Context, tool *model.Tool) error {
	return r.db.WithContext(ctx).Create(tool).Error
}

func (r *toolRepository) Update(ctx context.Context, tool *model.Tool) error {
	return r.db.WithContext(ctx).Save(tool).Error
}

func (r *toolRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Tool, error) {
	var tool model.Tool
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tool).Error; err != nil {
		return nil, err
	}
	return &tool, nil
}

func (r *toolRepository) FindByName(ctx context.Context, name string) (*model.Tool, error) {
	var tool model.Tool
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tool).Error; err != nil {
		return nil, err
	}
	return &tool, nil
}

func (r *toolRepository) List(ctx context.Context) ([]model.Tool, error) {
	var tools []model.Tool
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tools).Error; err != nil {
		return nil, err
	}
	return tools, nil
}
