package responses

import (
	"time"

	"github.com/Tomyshh/frank-melloul-website/internal/domain/auth"
)

// SessionResponse describes an admin session to the client.
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginResponse carries the bearer token and its session.
type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

func NewSessionResponse(session *auth.Session) SessionResponse {
	return SessionResponse{
		SessionID: session.ID,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	}
}
