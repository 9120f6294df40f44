package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the owner of notes, comments and sessions.
//
// Authentication state lives exclusively in the sessions table; the
// legacy `token` field of the JSON representation is derived from the
// user's live session and has no column here.
type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	Name         string `gorm:"size:100;not null"`
	PasswordHash string `gorm:"size:100;not null"`
	CreatedAt    int64  `gorm:"not null"`
	UpdatedAt    int64  `gorm:"not null;autoUpdateTime:false"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
