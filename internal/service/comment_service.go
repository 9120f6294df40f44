package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"notenest/internal/contract"
	"notenest/internal/domain/entity"
	"notenest/internal/mirror"
	"notenest/internal/utils"
	"notenest/internal/utils/apierror"
)

type CommentRepository interface {
	FindAll() ([]*entity.Comment, error)
	FindByID(id string) (*entity.Comment, error)
	FindByNoteID(noteID string) ([]*entity.Comment, error)
	FindByUserID(userID string) ([]*entity.Comment, error)
	FindByParentID(parentID string) ([]*entity.Comment, error)
	Save(comment *entity.Comment) error
	Delete(comment *entity.Comment) error
}

type CommentService struct {
	CommentRepo CommentRepository
	Mirror      Mirror
	Validate    *validator.Validate
}

func NewCommentService(commentRepo CommentRepository, m Mirror, validate *validator.Validate) *CommentService {
	return &CommentService{
		CommentRepo: commentRepo,
		Mirror:      m,
		Validate:    validate,
	}
}

func (s *CommentService) GetAll() ([]*contract.CommentResponse, apierror.ErrorResponse) {
	comments, err := s.CommentRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch comments: %v", err)
		return nil, apierror.InternalServerError
	}
	return toCommentResponses(comments), nil
}

func (s *CommentService) GetByID(id string) (*contract.CommentResponse, apierror.ErrorResponse) {
	comment, err := s.CommentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch comment: %v", err)
		return nil, apierror.InternalServerError
	}

	if comment == nil {
		return nil, apierror.NotFoundError
	}
	return toCommentResponse(comment), nil
}

func (s *CommentService) GetByNote(noteID string) ([]*contract.CommentResponse, apierror.ErrorResponse) {
	comments, err := s.CommentRepo.FindByNoteID(noteID)
	if err != nil {
		log.Errorf("failed to fetch comments of note %s: %v", noteID, err)
		return nil, apierror.InternalServerError
	}
	return toCommentResponses(comments), nil
}

func (s *CommentService) GetByUser(userID string) ([]*contract.CommentResponse, apierror.ErrorResponse) {
	comments, err := s.CommentRepo.FindByUserID(userID)
	if err != nil {
		log.Errorf("failed to fetch comments of user %s: %v", userID, err)
		return nil, apierror.InternalServerError
	}
	return toCommentResponses(comments), nil
}

// GetReplies returns direct replies only; deeper descendants keep
// their own parent links.
func (s *CommentService) GetReplies(commentID string) ([]*contract.CommentResponse, apierror.ErrorResponse) {
	comments, err := s.CommentRepo.FindByParentID(commentID)
	if err != nil {
		log.Errorf("failed to fetch replies of comment %s: %v", commentID, err)
		return nil, apierror.InternalServerError
	}
	return toCommentResponses(comments), nil
}

// Add creates a top-level comment; it is its own thread root.
func (s *CommentService) Add(req *contract.AddCommentRequest) (*contract.CommentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	now := utils.NowUTC()
	comment := &entity.Comment{
		ID:        orNewID(req.ID),
		UserID:    req.UserID,
		UserName:  req.UserName,
		NoteID:    req.NoteID,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	comment.RootComment = comment.ID

	if err := s.CommentRepo.Save(comment); err != nil {
		log.Errorf("failed to save comment: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Mirror.Upsert(mirror.TableComments, comment.ID, mirror.CommentDocument(comment))
	return toCommentResponse(comment), nil
}

// Reply attaches a comment under parentId. The thread is flattened to
// one level: when the parent is itself a reply, the new comment adopts
// the parent's root instead of nesting deeper.
func (s *CommentService) Reply(req *contract.ReplyCommentRequest) (*contract.CommentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	parent, err := s.CommentRepo.FindByID(req.ParentID)
	if err != nil {
		log.Errorf("failed to fetch parent comment: %v", err)
		return nil, apierror.InternalServerError
	}

	if parent == nil {
		return nil, apierror.NotFoundError
	}

	root := parent.ID
	if parent.ParentID != nil {
		root = parent.RootComment
	}

	now := utils.NowUTC()
	comment := &entity.Comment{
		ID:          orNewID(req.ID),
		UserID:      req.UserID,
		UserName:    req.UserName,
		NoteID:      req.NoteID,
		ParentID:    &parent.ID,
		RootComment: root,
		Content:     req.Content,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.CommentRepo.Save(comment); err != nil {
		log.Errorf("failed to save reply: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Mirror.Upsert(mirror.TableComments, comment.ID, mirror.CommentDocument(comment))
	return toCommentResponse(comment), nil
}

func (s *CommentService) Update(id string, req *contract.UpdateCommentRequest) (*contract.CommentResponse, apierror.ErrorResponse) {
	comment, err := s.CommentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch comment: %v", err)
		return nil, apierror.InternalServerError
	}

	if comment == nil {
		return nil, apierror.NotFoundError
	}

	if req.Content != nil {
		comment.Content = *req.Content
	}
	comment.UpdatedAt = utils.NowUTC()

	if err = s.CommentRepo.Save(comment); err != nil {
		log.Errorf("failed to update comment: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Mirror.Upsert(mirror.TableComments, comment.ID, mirror.CommentDocument(comment))
	return toCommentResponse(comment), nil
}

func (s *CommentService) Delete(id string) apierror.ErrorResponse {
	comment, err := s.CommentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch comment: %v", err)
		return apierror.InternalServerError
	}

	if comment == nil {
		return apierror.NotFoundError
	}

	if err = s.CommentRepo.Delete(comment); err != nil {
		log.Errorf("failed to delete comment: %v", err)
		return apierror.InternalServerError
	}

	s.Mirror.Delete(mirror.TableComments, comment.ID)
	return nil
}

func orNewID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func toCommentResponse(comment *entity.Comment) *contract.CommentResponse {
	return &contract.CommentResponse{
		ID:          comment.ID,
		UserID:      comment.UserID,
		UserName:    comment.UserName,
		NoteID:      comment.NoteID,
		ParentID:    comment.ParentID,
		RootComment: comment.RootComment,
		Content:     comment.Content,
		CreatedAt:   utils.FormatEpoch(comment.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(comment.UpdatedAt),
	}
}

func toCommentResponses(comments []*entity.Comment) []*contract.CommentResponse {
	resp := make([]*contract.CommentResponse, len(comments))
	for i, comment := range comments {
		resp[i] = toCommentResponse(comment)
	}
	return resp
}
