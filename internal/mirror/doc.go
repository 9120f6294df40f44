// Package mirror keeps a best-effort copy of every record in a
// SurrealDB document store. The mirror is never authoritative: writes
// are fire-and-forget after the primary commit, failures are logged
// and swallowed, and nothing reconciles drift. The only read path is
// the note-file fan-out used by the file listing.
package mirror

import (
	"notenest/internal/domain/entity"
	"notenest/internal/utils"
)

// Table names match the legacy document collections.
const (
	TableUsers     = "users"
	TableNotes     = "notes"
	TableNoteFiles = "note_files"
	TableComments  = "comments"
	TableSessions  = "sessions"
)

// UserDocument carries the credential hash on purpose: the legacy
// system mirrored it and downstream consumers read it from there.
func UserDocument(u *entity.User) map[string]any {
	return map[string]any{
		"_id":          u.ID,
		"id":           u.ID,
		"email":        u.Email,
		"name":         u.Name,
		"passwordHash": u.PasswordHash,
		"createdAt":    utils.FormatEpoch(u.CreatedAt),
		"updatedAt":    utils.FormatEpoch(u.UpdatedAt),
	}
}

func NoteDocument(n *entity.Note) map[string]any {
	return map[string]any{
		"_id":       n.ID,
		"id":        n.ID,
		"userId":    n.UserID,
		"title":     n.Title,
		"content":   n.Content,
		"isPublic":  n.IsPublic,
		"likes":     n.Likes,
		"createdAt": utils.FormatEpoch(n.CreatedAt),
		"updatedAt": utils.FormatEpoch(n.UpdatedAt),
	}
}

func NoteFileDocument(f *entity.NoteFile) map[string]any {
	return map[string]any{
		"_id":     f.ID,
		"id":      f.ID,
		"noteId":  f.NoteID,
		"fileUrl": f.FileURL,
	}
}

func CommentDocument(c *entity.Comment) map[string]any {
	return map[string]any{
		"_id":         c.ID,
		"id":          c.ID,
		"userId":      c.UserID,
		"userName":    c.UserName,
		"noteId":      c.NoteID,
		"parentId":    c.ParentID,
		"rootComment": c.RootComment,
		"content":     c.Content,
		"createdAt":   utils.FormatEpoch(c.CreatedAt),
		"updatedAt":   utils.FormatEpoch(c.UpdatedAt),
	}
}

func SessionDocument(s *entity.Session) map[string]any {
	return map[string]any{
		"_id":       s.ID,
		"id":        s.ID,
		"userId":    s.UserID,
		"token":     s.Token,
		"expiresAt": utils.FormatEpoch(s.ExpiresAt),
		"createdAt": utils.FormatEpoch(s.CreatedAt),
		"updatedAt": utils.FormatEpoch(s.UpdatedAt),
	}
}
