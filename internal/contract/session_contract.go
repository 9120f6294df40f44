package contract

type CreateSessionRequest struct {
	UserID string `json:"userId" validate:"required"`
	// Duration is in days; nil means the default of 7.
	Duration *int `json:"duration" validate:"omitempty,min=0"`
}

type ValidateSessionRequest struct {
	Token string `json:"token"`
}

type SessionResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type SessionEnvelope struct {
	Message string           `json:"message"`
	Session *SessionResponse `json:"session"`
}
