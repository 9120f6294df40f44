package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Note struct {
	ID        string  `gorm:"primaryKey;size:36"`
	UserID    string  `gorm:"size:36;not null;index"` // References: users(id)
	Title     string  `gorm:"size:100;not null"`
	Content   *string `gorm:"type:text"`
	IsPublic  bool    `gorm:"not null;default:false"`
	Likes     int     `gorm:"not null;default:0"`
	CreatedAt int64   `gorm:"not null"`
	UpdatedAt int64   `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Files []NoteFile `gorm:"foreignKey:NoteID;references:ID;constraint:OnDelete:CASCADE"`
}

func (n *Note) BeforeCreate(*gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
