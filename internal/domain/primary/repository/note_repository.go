package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"notenest/internal/domain/entity"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

func (d *DefaultNoteRepository) FindAll() ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) FindByID(id string) (*entity.Note, error) {
	var note entity.Note
	err := d.db.First(&note, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (d *DefaultNoteRepository) FindByUserID(userID string) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.Where("user_id = ?", userID).Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) FindPublic() ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.Where("is_public = ?", true).Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Search matches a case-insensitive substring against title or content.
func (d *DefaultNoteRepository) Search(query string) ([]*entity.Note, error) {
	var notes []*entity.Note
	pattern := "%" + query + "%"
	err := d.db.
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?)", pattern, pattern).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// CreateWithFiles persists the note and its attachments in one
// transaction; either everything commits or nothing does.
func (d *DefaultNoteRepository) CreateWithFiles(note *entity.Note, files []*entity.NoteFile) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(note).Error; err != nil {
			return err
		}

		for _, file := range files {
			file.NoteID = note.ID
			if err := tx.Create(file).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *DefaultNoteRepository) Save(note *entity.Note) error {
	return d.db.Save(note).Error
}

// UpsertAll merges externally synced notes, inserting new rows and
// overwriting existing ones by primary key.
func (d *DefaultNoteRepository) UpsertAll(notes []*entity.Note) error {
	if len(notes) == 0 {
		return nil
	}

	return d.db.Transaction(func(tx *gorm.DB) error {
		for _, note := range notes {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(note).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the note; attachments go with it through the declared
// ON DELETE CASCADE, not an application loop.
func (d *DefaultNoteRepository) Delete(note *entity.Note) error {
	return d.db.Delete(note).Error
}

func (d *DefaultNoteRepository) FindFilesByNoteID(noteID string) ([]*entity.NoteFile, error) {
	var files []*entity.NoteFile
	err := d.db.Where("note_id = ?", noteID).Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (d *DefaultNoteRepository) FindFileByID(id string) (*entity.NoteFile, error) {
	var file entity.NoteFile
	err := d.db.First(&file, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (d *DefaultNoteRepository) SaveFile(file *entity.NoteFile) error {
	return d.db.Save(file).Error
}

func (d *DefaultNoteRepository) DeleteFile(file *entity.NoteFile) error {
	return d.db.Delete(file).Error
}
