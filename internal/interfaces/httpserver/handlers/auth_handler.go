package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Tomyshh/frank-melloul-website/internal/domain/auth"
	"github.com/Tomyshh/frank-melloul-website/internal/interfaces/httpserver/middlewares"
	"github.com/Tomyshh/frank-melloul-website/internal/interfaces/httpserver/requests"
	"github.com/Tomyshh/frank-melloul-website/internal/interfaces/httpserver/responses"
	"github.com/Tomyshh/frank-melloul-website/internal/utils/platformerrors"
)

// AuthHandler exposes the admin session endpoints.
type AuthHandler struct {
	service *auth.Service
	log     zerolog.Logger
}

func NewAuthHandler(service *auth.Service, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With().Str("component", "auth-handler").Logger(),
	}
}

// Login exchanges credentials for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req requests.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error())
		return
	}

	token, session, err := h.service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		responses.HandleError(c, err, "sign-in failed")
		return
	}

	c.JSON(http.StatusOK, responses.LoginResponse{
		Token:   token,
		Session: responses.NewSessionResponse(session),
	})
}

// Logout revokes the caller's session. Already dead tokens are a no-op.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middlewares.BearerToken(c)
	if token == "" {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing bearer token")
		return
	}
	if err := h.service.SignOut(c.Request.Context(), token); err != nil {
		responses.HandleError(c, err, "sign-out failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"signed_out": true})
}

// Session returns the live session behind the RequireSession gate.
func (h *AuthHandler) Session(c *gin.Context) {
	session, ok := middlewares.SessionFromContext(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "no active session")
		return
	}
	c.JSON(http.StatusOK, responses.NewSessionResponse(session))
}

// Events streams session lifecycle events over SSE until the client
// disconnects.
func (h *AuthHandler) Events(c *gin.Context) {
	events, unsubscribe := h.service.Subscribe()
	defer unsubscribe()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("session", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
