package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"notenest/internal/contract"
	"notenest/internal/utils/apierror"
)

type SessionService interface {
	GetAll() ([]*contract.SessionResponse, apierror.ErrorResponse)
	GetByUser(userID string) (*contract.SessionResponse, apierror.ErrorResponse)
	Create(req *contract.CreateSessionRequest) (*contract.SessionResponse, apierror.ErrorResponse)
	ValidateToken(token string) (*contract.SessionResponse, apierror.ErrorResponse)
	DeleteByUser(userID string) apierror.ErrorResponse
}

type DefaultSessionRoute struct {
	SessionService SessionService
}

func NewSessionDefault(sessionService SessionService) *DefaultSessionRoute {
	return &DefaultSessionRoute{SessionService: sessionService}
}

func (s *DefaultSessionRoute) GetSessions(c echo.Context) error {
	sessions, apierr := s.SessionService.GetAll()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, sessions)
}

func (s *DefaultSessionRoute) GetSession(c echo.Context) error {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("userId"))
	}

	session, apierr := s.SessionService.GetByUser(userID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, session)
}

func (s *DefaultSessionRoute) CreateSession(c echo.Context) error {
	var req contract.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	session, apierr := s.SessionService.Create(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	return c.JSON(http.StatusCreated, &contract.SessionEnvelope{
		Message: "Session created",
		Session: session,
	})
}

func (s *DefaultSessionRoute) ValidateSession(c echo.Context) error {
	var req contract.ValidateSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	session, apierr := s.SessionService.ValidateToken(req.Token)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	return c.JSON(http.StatusOK, &contract.SessionEnvelope{
		Message: "Session valid",
		Session: session,
	})
}

func (s *DefaultSessionRoute) DeleteSession(c echo.Context) error {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("userId"))
	}

	if apierr := s.SessionService.DeleteByUser(userID); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &contract.MessageResponse{Message: "Session deleted"})
}
