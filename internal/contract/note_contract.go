package contract

type NoteFilePayload struct {
	// ID is honored when supplied by the caller, generated otherwise.
	ID      string `json:"id" validate:"omitempty,uuid"`
	FileURL string `json:"fileUrl" validate:"required,max=255"`
}

type CreateNoteRequest struct {
	ID       string            `json:"id" validate:"omitempty,uuid"`
	UserID   string            `json:"userId" validate:"required"`
	Title    string            `json:"title" validate:"required,max=100"`
	Content  *string           `json:"content"`
	IsPublic bool              `json:"isPublic"`
	Files    []NoteFilePayload `json:"files" validate:"omitempty,dive"`
}

type UpdateNoteRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=100"`
	Content  *string `json:"content"`
	IsPublic *bool   `json:"isPublic"`
}

// SyncNotePayload is one element of the bulk sync body; timestamps are
// RFC3339 and optional.
type SyncNotePayload struct {
	ID        string  `json:"id" validate:"omitempty,uuid"`
	UserID    string  `json:"userId" validate:"required"`
	Title     string  `json:"title" validate:"required,max=100"`
	Content   *string `json:"content"`
	IsPublic  bool    `json:"isPublic"`
	Likes     int     `json:"likes" validate:"omitempty,min=0"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type AddNoteFileRequest struct {
	ID      string `json:"id" validate:"omitempty,uuid"`
	NoteID  string `json:"noteId" validate:"required"`
	FileURL string `json:"fileUrl" validate:"required,max=255"`
}

type NoteResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Title     string  `json:"title"`
	Content   *string `json:"content"`
	IsPublic  bool    `json:"isPublic"`
	Likes     int     `json:"likes"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type NoteFileResponse struct {
	ID      string `json:"id"`
	NoteID  string `json:"noteId"`
	FileURL string `json:"fileUrl"`
}

type LikeResponse struct {
	Message string `json:"message"`
	Likes   int    `json:"likes"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UploadResponse struct {
	FileURL string `json:"fileUrl"`
}
