package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Tomyshh/frank-melloul-website/internal/utils/platformerrors"
	"github.com/Tomyshh/frank-melloul-website/utils/recordid"
)

// Claims is the JWT payload issued on sign-in. The session id lets a token
// be revoked server-side before its expiry.
type Claims struct {
	SessionID string `json:"sid"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// Service issues and verifies admin sessions. Tokens are HS256-signed and
// backed by a session row, so sign-out takes effect immediately instead of
// waiting for token expiry. With no signing secret configured the service
// stays up but refuses every operation with a configuration error.
type Service struct {
	users    UserRepository
	sessions SessionRepository
	secret   []byte
	ttl      time.Duration
	log      zerolog.Logger
	events   *hub
	now      func() time.Time
}

func NewService(users UserRepository, sessions SessionRepository, secret string, ttl time.Duration, log zerolog.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		secret:   []byte(secret),
		ttl:      ttl,
		log:      log.With().Str("component", "auth").Logger(),
		events:   newHub(),
		now:      time.Now,
	}
}

func (s *Service) Configured() bool {
	return len(s.secret) > 0
}

func (s *Service) unconfigured(ctx context.Context) error {
	return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConfiguration,
		"authentication is not configured: AUTH_SECRET is empty", nil)
}

// SignIn verifies the credentials, records a session row, and returns a
// signed token for it.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, *Session, error) {
	if !s.Configured() {
		return "", nil, s.unconfigured(ctx)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			return "", nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnauthorized,
				"invalid email or password", nil)
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnauthorized,
			"invalid email or password", nil)
	}

	now := s.now()
	session := &Session{
		ID:        recordid.New(),
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.sessions.Insert(ctx, session); err != nil {
		return "", nil, err
	}

	claims := Claims{
		SessionID: session.ID,
		Email:     user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			"failed to sign session token", err)
	}

	s.events.publish(Event{Kind: EventSignedIn, SessionID: session.ID, Email: user.Email, At: now})
	s.log.Info().Str("email", user.Email).Str("session_id", session.ID).Msg("admin signed in")
	return token, session, nil
}

// Current resolves a token to its live session. Expired, revoked, or
// tampered tokens all come back unauthorized.
func (s *Service) Current(ctx context.Context, token string) (*Session, error) {
	if !s.Configured() {
		return nil, s.unconfigured(ctx)
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnauthorized,
			"invalid session token", err)
	}

	session, err := s.sessions.GetByID(ctx, claims.SessionID)
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnauthorized,
				"session no longer exists", nil)
		}
		return nil, err
	}
	if !session.Active(s.now()) {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnauthorized,
			"session has expired or was revoked", nil)
	}
	return session, nil
}

// SignOut revokes the token's session and notifies subscribers. Revoking an
// already dead token is not an error for the caller.
func (s *Service) SignOut(ctx context.Context, token string) error {
	session, err := s.Current(ctx, token)
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeUnauthorized) {
			return nil
		}
		return err
	}

	now := s.now()
	if err := s.sessions.Revoke(ctx, session.ID, now); err != nil {
		return err
	}
	s.events.publish(Event{Kind: EventSignedOut, SessionID: session.ID, Email: session.Email, At: now})
	s.log.Info().Str("email", session.Email).Str("session_id", session.ID).Msg("admin signed out")
	return nil
}

// Subscribe registers a listener for session lifecycle events. The returned
// function must be called to release the subscription.
func (s *Service) Subscribe() (<-chan Event, func()) {
	return s.events.subscribe()
}
