package model

import (
	"time"

	"github.com/google/uuid"
)

// Favorite links a user to a favorited tool. The composite primary key makes
// adds idempotent at the database level and removes a keyed delete.
type Favorite struct {
	UserID    uuid.UUID `json:"userId" gorm:"type:char(36);primaryKey"`
	ToolID    uuid.UUID `json:"toolId" gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
}
