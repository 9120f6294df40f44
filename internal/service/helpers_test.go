package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"notenest/internal/auth"
	"notenest/internal/domain/entity"
	"notenest/internal/domain/primary"
	"notenest/internal/domain/primary/repository"
	"notenest/internal/utils"
	"notenest/internal/utils/validators"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := primary.Init(primary.DriverSQLite, ":memory:")
	require.NoError(t, err)
	return db
}

// fakeMirror records mirror calls synchronously so tests can assert on
// them without racing a writer goroutine.
type fakeMirror struct {
	mu         sync.Mutex
	upserts    []string // "table:id"
	deletes    []string
	increments []string // "table:id:field:delta"

	// files and filesErr drive the MirrorReader side.
	files    []map[string]any
	filesErr error
}

func (f *fakeMirror) Upsert(table, id string, doc map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, table+":"+id)
}

func (f *fakeMirror) Delete(table, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, table+":"+id)
}

func (f *fakeMirror) Increment(table, id, field string, delta int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.increments = append(f.increments, fmt.Sprintf("%s:%s:%s:%d", table, id, field, delta))
}

func (f *fakeMirror) NoteFiles(noteID string) ([]map[string]any, error) {
	if f.filesErr != nil {
		return nil, f.filesErr
	}
	return f.files, nil
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	now := utils.NowUTC()
	user := &entity.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: "x",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedNote(t *testing.T, db *gorm.DB, userID string) *entity.Note {
	t.Helper()
	now := utils.NowUTC()
	note := &entity.Note{
		UserID:    userID,
		Title:     "Groceries",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(note).Error)
	return note
}

func newNoteService(db *gorm.DB, m *fakeMirror) *DefaultNoteService {
	return NewNoteService(
		repository.NewNoteRepository(db),
		repository.NewUserRepository(db),
		m,
		m,
		validators.New(),
	)
}

func newSessionService(db *gorm.DB, m *fakeMirror) *SessionService {
	return NewSessionService(repository.NewSessionRepository(db), m, validators.New())
}

func newCommentService(db *gorm.DB, m *fakeMirror) *CommentService {
	return NewCommentService(repository.NewCommentRepository(db), m, validators.New())
}

func newUserService(db *gorm.DB, m *fakeMirror) *UserService {
	return NewUserService(
		repository.NewUserRepository(db),
		newSessionService(db, m),
		auth.NewPasswordHasherWithCost(bcrypt.MinCost),
		m,
		validators.New(),
	)
}
