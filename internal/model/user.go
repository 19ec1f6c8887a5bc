package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	FullName     string    `json:"fullName" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password     string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, never serialized
	Avatar       string    `json:"avatar" gorm:"size:512"`
	IsAdmin      bool      `json:"isAdmin" gorm:"default:false"`
	IsSuperAdmin bool      `json:"isSuperAdmin" gorm:"default:false"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Profile is the fixed projection returned by the profile endpoint.
type Profile struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"fullName"`
	Avatar   string    `json:"avatar"`
	IsAdmin  bool      `json:"isAdmin"`
}

// Profile projects the user down to its public profile fields.
func (u *User) Profile() *Profile {
	return &Profile{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Avatar:   u.Avatar,
		IsAdmin:  u.IsAdmin,
	}
}
