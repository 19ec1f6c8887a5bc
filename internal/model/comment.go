package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a threaded comment on a tool. ParentID is nil for top-level
// comments; a non-nil parent must reference a comment on the same tool.
type Comment struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	ToolID    uuid.UUID  `json:"toolId" gorm:"type:char(36);not null;index"`
	UserID    uuid.UUID  `json:"userId" gorm:"type:char(36);not null;index"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	ParentID  *uuid.UUID `json:"parentId" gorm:"type:char(36);index"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`

	// Author and Replies are filled by the service layer, not by GORM.
	Author  *Profile  `json:"author,omitempty" gorm:"-"`
	Replies []Comment `json:"replies,omitempty" gorm:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
