package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a threaded note comment. ParentID points at the direct
// parent; RootComment always points at the top-level ancestor, so a
// reply to a reply adopts its parent's root instead of starting a new
// level. Top-level comments are their own root.
type Comment struct {
	ID          string  `gorm:"primaryKey;size:36"`
	UserID      string  `gorm:"size:36;not null;index"` // References: users(id)
	UserName    string  `gorm:"size:100"`
	NoteID      string  `gorm:"size:36;not null;index"` // References: notes(id)
	ParentID    *string `gorm:"size:36;index"`          // References: comments(id)
	RootComment string  `gorm:"size:36;not null"`
	Content     string  `gorm:"type:text;not null"`
	CreatedAt   int64   `gorm:"not null"`
	UpdatedAt   int64   `gorm:"not null;autoUpdateTime:false"`
}

func (c *Comment) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.RootComment == "" {
		c.RootComment = c.ID
	}
	return nil
}
