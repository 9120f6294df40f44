package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"notenest/internal/domain/entity"
	"notenest/internal/domain/primary"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := primary.Init(primary.DriverSQLite, ":memory:")
	require.NoError(t, err)
	return db
}

func seedNoteWithFiles(t *testing.T, repo *DefaultNoteRepository, userID string) *entity.Note {
	t.Helper()
	content := "supplies for the week"
	note := &entity.Note{
		UserID:  userID,
		Title:   "Groceries",
		Content: &content,
	}
	files := []*entity.NoteFile{
		{FileURL: "https://cdn.example.com/a.png"},
		{FileURL: "https://cdn.example.com/b.png"},
	}
	require.NoError(t, repo.CreateWithFiles(note, files))
	return note
}

func TestDeleteCascadesFiles(t *testing.T) {
	db := newTestDB(t)
	repo := NewNoteRepository(db)

	user := &entity.User{Email: "alice@example.com", Name: "Alice", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	note := seedNoteWithFiles(t, repo, user.ID)

	files, err := repo.FindFilesByNoteID(note.ID)
	require.NoError(t, err)
	require.Len(t, files, 2)

	require.NoError(t, repo.Delete(note))

	// The foreign key cascade removes the attachment rows; no
	// application code touches them.
	files, err = repo.FindFilesByNoteID(note.ID)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindByIDMissingIsNilNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewNoteRepository(db)

	note, err := repo.FindByID("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, note)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewNoteRepository(db)

	user := &entity.User{Email: "alice@example.com", Name: "Alice", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	content := "quarterly PLANNING session"
	require.NoError(t, repo.CreateWithFiles(&entity.Note{
		UserID:  user.ID,
		Title:   "Meeting notes",
		Content: &content,
	}, nil))
	require.NoError(t, repo.CreateWithFiles(&entity.Note{
		UserID: user.ID,
		Title:  "Groceries",
	}, nil))

	byContent, err := repo.Search("planning")
	require.NoError(t, err)
	require.Len(t, byContent, 1)
	assert.Equal(t, "Meeting notes", byContent[0].Title)

	byTitle, err := repo.Search("GROCER")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "Groceries", byTitle[0].Title)
}

func TestUpsertAllInsertsAndOverwrites(t *testing.T) {
	db := newTestDB(t)
	repo := NewNoteRepository(db)

	user := &entity.User{Email: "alice@example.com", Name: "Alice", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	note := seedNoteWithFiles(t, repo, user.ID)

	require.NoError(t, repo.UpsertAll([]*entity.Note{
		{ID: note.ID, UserID: user.ID, Title: "Groceries v2", Likes: 5},
		{UserID: user.ID, Title: "Fresh"},
	}))

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	updated, err := repo.FindByID(note.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Groceries v2", updated.Title)
	assert.Equal(t, 5, updated.Likes)
}
