package contract

type AddCommentRequest struct {
	ID       string `json:"id" validate:"omitempty,uuid"`
	NoteID   string `json:"noteId" validate:"required"`
	UserID   string `json:"userId" validate:"required"`
	UserName string `json:"userName" validate:"omitempty,max=100"`
	Content  string `json:"content" validate:"required"`
}

type ReplyCommentRequest struct {
	ID       string `json:"id" validate:"omitempty,uuid"`
	ParentID string `json:"parentId" validate:"required"`
	NoteID   string `json:"noteId" validate:"required"`
	UserID   string `json:"userId" validate:"required"`
	UserName string `json:"userName" validate:"omitempty,max=100"`
	Content  string `json:"content" validate:"required"`
}

type UpdateCommentRequest struct {
	Content *string `json:"content"`
}

type CommentResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	UserName    string  `json:"userName"`
	NoteID      string  `json:"noteId"`
	ParentID    *string `json:"parentId"`
	RootComment string  `json:"rootComment"`
	Content     string  `json:"content"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}
