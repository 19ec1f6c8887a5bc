package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tool represents an entry in the tools directory. Tool management itself
// lives outside this service; the entity exists here so favorites can be
// resolved and comments can reference it.
type Tool struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	Website     string    `json:"website" gorm:"size:512"`
	Category    string    `json:"category" gorm:"size:100;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Tool) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
