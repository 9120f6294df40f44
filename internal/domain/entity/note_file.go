package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteFile is an attachment reference; the payload itself lives behind
// FileURL and is never stored in either database.
type NoteFile struct {
	ID      string `gorm:"primaryKey;size:36"`
	NoteID  string `gorm:"size:36;not null;index"` // References: notes(id)
	FileURL string `gorm:"size:255;not null"`
}

func (f *NoteFile) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
