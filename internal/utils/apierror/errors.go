package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedJSONError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Internal server error")

	NotFoundError        = NewSimple(404, "Resource not found")
	SessionNotFoundError = NewSimple(404, "Session not found")

	// UserNotFoundError is a 400 and not a 404: a note or comment that
	// references a user that does not exist is invalid input.
	UserNotFoundError = NewSimple(400, "The referenced user does not exist")

	NoLikesToRemoveError = NewSimple(400, "The note has no likes to remove")

	EmailTakenError = NewSimple(409, "Email is already registered")

	InvalidCredentialsError = NewSimple(401, "Invalid credentials")
	InvalidAuthTokenError   = NewSimple(401, "Missing or invalid auth token")
	SessionExpiredError     = NewSimple(401, "Session has expired")
	UnauthorizedError       = NewSimple(401, "Missing authentication")
)

// FromValidationError maps validator failures onto the structured 400
// shape. Anything that is not a field-level validation error falls
// back to a plain 500 rather than a typed-nil response.
func FromValidationError(err error) ErrorResponse {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return InternalServerError
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "uuid":
			problems[field] = append(problems[field], "Value must be a valid UUID")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewMissingFieldError(name string) *StructuredError {
	return &StructuredError{
		Errors: map[string][]string{name: {"This field is required"}},
		Status: http.StatusBadRequest,
	}
}

func NewMissingParamError(name string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' is required", name)
}
