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

// DefaultSessionDurationDays applies when a create request carries no
// explicit duration.
const DefaultSessionDurationDays = 7

const dayMillis = int64(24 * 60 * 60 * 1000)

type SessionRepository interface {
	FindAll() ([]*entity.Session, error)
	FindByUserID(userID string) (*entity.Session, error)
	FindByToken(token string) (*entity.Session, error)
	Save(session *entity.Session) error
	Delete(session *entity.Session) error
}

type SessionService struct {
	SessionRepo SessionRepository
	Mirror      Mirror
	Validate    *validator.Validate
}

func NewSessionService(sessionRepo SessionRepository, m Mirror, validate *validator.Validate) *SessionService {
	return &SessionService{
		SessionRepo: sessionRepo,
		Mirror:      m,
		Validate:    validate,
	}
}

func (s *SessionService) GetAll() ([]*contract.SessionResponse, apierror.ErrorResponse) {
	sessions, err := s.SessionRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch sessions: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.SessionResponse, len(sessions))
	for i, session := range sessions {
		resp[i] = toSessionResponse(session)
	}
	return resp, nil
}

func (s *SessionService) GetByUser(userID string) (*contract.SessionResponse, apierror.ErrorResponse) {
	session, err := s.SessionRepo.FindByUserID(userID)
	if err != nil {
		log.Errorf("failed to fetch session for user %s: %v", userID, err)
		return nil, apierror.InternalServerError
	}

	if session == nil {
		return nil, apierror.SessionNotFoundError
	}
	return toSessionResponse(session), nil
}

// Create issues a fresh token for the user. Any prior session is
// deleted first, keeping at most one live session per user; that is
// not an error.
func (s *SessionService) Create(req *contract.CreateSessionRequest) (*contract.SessionResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	existing, err := s.SessionRepo.FindByUserID(req.UserID)
	if err != nil {
		log.Errorf("failed to fetch session for user %s: %v", req.UserID, err)
		return nil, apierror.InternalServerError
	}

	if existing != nil {
		if err = s.SessionRepo.Delete(existing); err != nil {
			log.Errorf("failed to replace session for user %s: %v", req.UserID, err)
			return nil, apierror.InternalServerError
		}
		s.Mirror.Delete(mirror.TableSessions, existing.ID)
	}

	duration := DefaultSessionDurationDays
	if req.Duration != nil {
		duration = *req.Duration
	}

	now := utils.NowUTC()
	session := &entity.Session{
		UserID:    req.UserID,
		Token:     uuid.NewString(),
		ExpiresAt: now + int64(duration)*dayMillis,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.SessionRepo.Save(session); err != nil {
		log.Errorf("failed to save session: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Mirror.Upsert(mirror.TableSessions, session.ID, mirror.SessionDocument(session))
	return toSessionResponse(session), nil
}

// Validate checks a bearer token. Expiry is evaluated lazily, only
// here: an expired session is deleted from the primary store (and its
// mirror copy queued for deletion) the first time someone presents
// its token.
func (s *SessionService) ValidateToken(token string) (*contract.SessionResponse, apierror.ErrorResponse) {
	if token == "" {
		return nil, apierror.NewMissingFieldError("token")
	}

	session, err := s.SessionRepo.FindByToken(token)
	if err != nil {
		log.Errorf("failed to fetch session by token: %v", err)
		return nil, apierror.InternalServerError
	}

	if session == nil {
		return nil, apierror.SessionNotFoundError
	}

	if session.Expired(utils.NowUTC()) {
		if err = s.SessionRepo.Delete(session); err != nil {
			log.Errorf("failed to delete expired session %s: %v", session.ID, err)
			return nil, apierror.InternalServerError
		}
		s.Mirror.Delete(mirror.TableSessions, session.ID)
		return nil, apierror.SessionExpiredError
	}

	return toSessionResponse(session), nil
}

func (s *SessionService) DeleteByUser(userID string) apierror.ErrorResponse {
	session, err := s.SessionRepo.FindByUserID(userID)
	if err != nil {
		log.Errorf("failed to fetch session for user %s: %v", userID, err)
		return apierror.InternalServerError
	}

	if session == nil {
		return apierror.SessionNotFoundError
	}

	if err = s.SessionRepo.Delete(session); err != nil {
		log.Errorf("failed to delete session %s: %v", session.ID, err)
		return apierror.InternalServerError
	}

	s.Mirror.Delete(mirror.TableSessions, session.ID)
	return nil
}

// DeleteByToken backs logout: the presented token must match a live
// session.
func (s *SessionService) DeleteByToken(token string) apierror.ErrorResponse {
	session, err := s.SessionRepo.FindByToken(token)
	if err != nil {
		log.Errorf("failed to fetch session by token: %v", err)
		return apierror.InternalServerError
	}

	if session == nil {
		return apierror.InvalidAuthTokenError
	}

	if err = s.SessionRepo.Delete(session); err != nil {
		log.Errorf("failed to delete session %s: %v", session.ID, err)
		return apierror.InternalServerError
	}

	s.Mirror.Delete(mirror.TableSessions, session.ID)
	return nil
}

// TokenForUser is the derived compatibility view of the legacy
// `user.token` field: the token of the user's live session, if any.
func (s *SessionService) TokenForUser(userID string) *string {
	session, err := s.SessionRepo.FindByUserID(userID)
	if err != nil {
		log.Errorf("failed to fetch session for user %s: %v", userID, err)
		return nil
	}

	if session == nil || session.Expired(utils.NowUTC()) {
		return nil
	}
	return &session.Token
}

func toSessionResponse(session *entity.Session) *contract.SessionResponse {
	return &contract.SessionResponse{
		ID:        session.ID,
		UserID:    session.UserID,
		Token:     session.Token,
		ExpiresAt: utils.FormatEpoch(session.ExpiresAt),
		CreatedAt: utils.FormatEpoch(session.CreatedAt),
		UpdatedAt: utils.FormatEpoch(session.UpdatedAt),
	}
}
