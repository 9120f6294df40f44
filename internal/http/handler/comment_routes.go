package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"notenest/internal/contract"
	"notenest/internal/utils/apierror"
)

type CommentService interface {
	GetAll() ([]*contract.CommentResponse, apierror.ErrorResponse)
	GetByID(id string) (*contract.CommentResponse, apierror.ErrorResponse)
	GetByNote(noteID string) ([]*contract.CommentResponse, apierror.ErrorResponse)
	GetByUser(userID string) ([]*contract.CommentResponse, apierror.ErrorResponse)
	GetReplies(commentID string) ([]*contract.CommentResponse, apierror.ErrorResponse)
	Add(req *contract.AddCommentRequest) (*contract.CommentResponse, apierror.ErrorResponse)
	Reply(req *contract.ReplyCommentRequest) (*contract.CommentResponse, apierror.ErrorResponse)
	Update(id string, req *contract.UpdateCommentRequest) (*contract.CommentResponse, apierror.ErrorResponse)
	Delete(id string) apierror.ErrorResponse
}

type DefaultCommentRoute struct {
	CommentService CommentService
}

func NewCommentDefault(commentService CommentService) *DefaultCommentRoute {
	return &DefaultCommentRoute{CommentService: commentService}
}

func (h *DefaultCommentRoute) GetComments(c echo.Context) error {
	comments, apierr := h.CommentService.GetAll()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *DefaultCommentRoute) GetComment(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	comment, apierr := h.CommentService.GetByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, comment)
}

func (h *DefaultCommentRoute) GetCommentsByNote(c echo.Context) error {
	noteID := strings.TrimSpace(c.Param("noteId"))
	if noteID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("noteId"))
	}

	comments, apierr := h.CommentService.GetByNote(noteID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *DefaultCommentRoute) GetCommentsByUser(c echo.Context) error {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("userId"))
	}

	comments, apierr := h.CommentService.GetByUser(userID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *DefaultCommentRoute) GetCommentReplies(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	replies, apierr := h.CommentService.GetReplies(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, replies)
}

func (h *DefaultCommentRoute) AddComment(c echo.Context) error {
	var req contract.AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	comment, apierr := h.CommentService.Add(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	return c.JSON(http.StatusCreated, &contract.CreatedResponse{
		Message: "Comment created",
		ID:      comment.ID,
	})
}

func (h *DefaultCommentRoute) ReplyComment(c echo.Context) error {
	var req contract.ReplyCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	reply, apierr := h.CommentService.Reply(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	return c.JSON(http.StatusCreated, &contract.CreatedResponse{
		Message: "Reply created",
		ID:      reply.ID,
	})
}

func (h *DefaultCommentRoute) UpdateComment(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	var req contract.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	comment, apierr := h.CommentService.Update(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, comment)
}

func (h *DefaultCommentRoute) DeleteComment(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	if apierr := h.CommentService.Delete(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &contract.MessageResponse{Message: "Comment deleted"})
}
