package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is the canonical bearer token. At most one live session
// exists per user; creating a new one deletes the previous row.
// Expiry is checked lazily on validation, there is no sweeper.
type Session struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"size:36;not null;index"` // References: users(id)
	Token     string `gorm:"size:36;uniqueIndex;not null"`
	ExpiresAt int64  `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:false"`
}

func (s *Session) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Expired reports whether the session is no longer valid at the given
// instant. A session created with duration 0 is expired immediately.
func (s *Session) Expired(nowMillis int64) bool {
	return s.ExpiresAt <= nowMillis
}
