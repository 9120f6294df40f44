package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"notenest/internal/contract"
	"notenest/internal/utils/apierror"
)

type NoteService interface {
	GetAll() ([]*contract.NoteResponse, apierror.ErrorResponse)
	GetByID(id string) (*contract.NoteResponse, apierror.ErrorResponse)
	GetByUser(userID string) ([]*contract.NoteResponse, apierror.ErrorResponse)
	GetPublic() ([]*contract.NoteResponse, apierror.ErrorResponse)
	Search(query string) ([]*contract.NoteResponse, apierror.ErrorResponse)
	Create(req *contract.CreateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	Update(id string, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	Delete(id string) apierror.ErrorResponse
	Like(id string) (*contract.LikeResponse, apierror.ErrorResponse)
	Unlike(id string) (*contract.LikeResponse, apierror.ErrorResponse)
	NoteFiles(noteID string) ([]*contract.NoteFileResponse, apierror.ErrorResponse)
	AddFile(req *contract.AddNoteFileRequest) (*contract.NoteFileResponse, apierror.ErrorResponse)
	DeleteFile(id string) apierror.ErrorResponse
	Sync(payloads []*contract.SyncNotePayload) apierror.ErrorResponse
}

type DefaultNoteRoute struct {
	NoteService NoteService
}

func NewNoteDefault(noteService NoteService) *DefaultNoteRoute {
	return &DefaultNoteRoute{NoteService: noteService}
}

func (n *DefaultNoteRoute) GetNotes(c echo.Context) error {
	notes, apierr := n.NoteService.GetAll()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, notes)
}

func (n *DefaultNoteRoute) GetNote(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	note, apierr := n.NoteService.GetByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (n *DefaultNoteRoute) GetNotesByUser(c echo.Context) error {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("userId"))
	}

	notes, apierr := n.NoteService.GetByUser(userID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, notes)
}

func (n *DefaultNoteRoute) GetPublicNotes(c echo.Context) error {
	notes, apierr := n.NoteService.GetPublic()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, notes)
}

func (n *DefaultNoteRoute) SearchNotes(c echo.Context) error {
	notes, apierr := n.NoteService.Search(strings.TrimSpace(c.QueryParam("q")))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, notes)
}

func (n *DefaultNoteRoute) AddNote(c echo.Context) error {
	var req contract.CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	note, apierr := n.NoteService.Create(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	return c.JSON(http.StatusCreated, &contract.CreatedResponse{
		Message: "Note created",
		ID:      note.ID,
	})
}

func (n *DefaultNoteRoute) UpdateNote(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	var req contract.UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	note, apierr := n.NoteService.Update(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (n *DefaultNoteRoute) DeleteNote(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	if apierr := n.NoteService.Delete(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &contract.MessageResponse{Message: "Note deleted"})
}

func (n *DefaultNoteRoute) LikeNote(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	resp, apierr := n.NoteService.Like(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (n *DefaultNoteRoute) UnlikeNote(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	resp, apierr := n.NoteService.Unlike(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (n *DefaultNoteRoute) GetNoteFiles(c echo.Context) error {
	noteID := strings.TrimSpace(c.Param("noteId"))
	if noteID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("noteId"))
	}

	files, apierr := n.NoteService.NoteFiles(noteID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, files)
}

func (n *DefaultNoteRoute) AddNoteFile(c echo.Context) error {
	var req contract.AddNoteFileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	file, apierr := n.NoteService.AddFile(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	return c.JSON(http.StatusCreated, &contract.CreatedResponse{
		Message: "File attached",
		ID:      file.ID,
	})
}

func (n *DefaultNoteRoute) DeleteNoteFile(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	if apierr := n.NoteService.DeleteFile(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &contract.MessageResponse{Message: "File deleted"})
}

func (n *DefaultNoteRoute) SyncNotes(c echo.Context) error {
	var payloads []*contract.SyncNotePayload
	if err := c.Bind(&payloads); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	if apierr := n.NoteService.Sync(payloads); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &contract.MessageResponse{Message: "Notes synced"})
}
