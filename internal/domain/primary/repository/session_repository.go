package repository

import (
	"errors"

	"gorm.io/gorm"

	"notenest/internal/domain/entity"
)

type DefaultSessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *DefaultSessionRepository {
	return &DefaultSessionRepository{db: db}
}

func (s *DefaultSessionRepository) FindAll() ([]*entity.Session, error) {
	var sessions []*entity.Session
	err := s.db.Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *DefaultSessionRepository) FindByUserID(userID string) (*entity.Session, error) {
	var session entity.Session
	err := s.db.Where("user_id = ?", userID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *DefaultSessionRepository) FindByToken(token string) (*entity.Session, error) {
	var session entity.Session
	err := s.db.Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *DefaultSessionRepository) Save(session *entity.Session) error {
	return s.db.Save(session).Error
}

func (s *DefaultSessionRepository) Delete(session *entity.Session) error {
	return s.db.Delete(session).Error
}
