package repository

import (
	"errors"

	"gorm.io/gorm"

	"notenest/internal/domain/entity"
)

type DefaultCommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *DefaultCommentRepository {
	return &DefaultCommentRepository{db: db}
}

func (d *DefaultCommentRepository) FindAll() ([]*entity.Comment, error) {
	var comments []*entity.Comment
	err := d.db.Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (d *DefaultCommentRepository) FindByID(id string) (*entity.Comment, error) {
	var comment entity.Comment
	err := d.db.First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (d *DefaultCommentRepository) FindByNoteID(noteID string) ([]*entity.Comment, error) {
	var comments []*entity.Comment
	err := d.db.Where("note_id = ?", noteID).Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (d *DefaultCommentRepository) FindByUserID(userID string) ([]*entity.Comment, error) {
	var comments []*entity.Comment
	err := d.db.Where("user_id = ?", userID).Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByParentID returns direct replies only, not the full subtree.
func (d *DefaultCommentRepository) FindByParentID(parentID string) ([]*entity.Comment, error) {
	var comments []*entity.Comment
	err := d.db.Where("parent_id = ?", parentID).Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (d *DefaultCommentRepository) Save(comment *entity.Comment) error {
	return d.db.Save(comment).Error
}

func (d *DefaultCommentRepository) Delete(comment *entity.Comment) error {
	return d.db.Delete(comment).Error
}
