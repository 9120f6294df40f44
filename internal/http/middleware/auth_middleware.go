package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"notenest/internal/contract"
	"notenest/internal/domain/entity"
	"notenest/internal/http/handler"
	"notenest/internal/utils/apierror"
)

type SessionValidator interface {
	ValidateToken(token string) (*contract.SessionResponse, apierror.ErrorResponse)
}

type UserRepository interface {
	FindByID(id string) (*entity.User, error)
}

type AuthMiddlewareConfig struct {
	Sessions SessionValidator
	UserRepo UserRepository
}

// NewAuthMiddleware creates the handler with dependencies injected.
// The session token is the opaque UUID issued at login; expiry is
// checked lazily by the validator.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := handler.BearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			session, apierr := cfg.Sessions.ValidateToken(token)
			if apierr != nil {
				return c.JSON(apierr.Code(), apierr)
			}

			user, err := cfg.UserRepo.FindByID(session.UserID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if user == nil {
				// User deleted in DB but still has a live session???
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			c.Set("user", user)
			c.Set("token", token)
			return next(c)
		}
	}
}
