// Package contract holds the request and response shapes of the JSON
// boundary. Field names are camelCase for compatibility with the
// legacy clients; the database side stays snake_case.
package contract

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=100"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

// RegisterResponse echoes the credential hash back, as the legacy API
// did for its sync consumers.
type RegisterResponse struct {
	Message      string `json:"message"`
	ID           string `json:"id"`
	PasswordHash string `json:"passwordHash"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    *UserResponse `json:"user"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Password *string `json:"password" validate:"omitempty,min=1,max=72"`
}

// UserResponse never exposes the credential hash. Token is a derived
// view of the user's live session, not stored state.
type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Token     *string `json:"token"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}
