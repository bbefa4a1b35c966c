package auth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/Tomyshh/frank-melloul-website/internal/domain/auth"
	"github.com/Tomyshh/frank-melloul-website/internal/utils/platformerrors"
	"github.com/Tomyshh/frank-melloul-website/utils/recordid"
)

// InMemoryUserRepository holds at most the one admin user seeded from the
// environment. Used when no database is configured.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[string]domain.User)}
}

// Seed registers an admin user with a freshly hashed password. A blank
// email or password leaves the repository empty.
func (r *InMemoryUserRepository) Seed(email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[email] = domain.User{ID: recordid.New(), Email: email, PasswordHash: string(hash)}
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[email]
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
			"admin user not found", nil)
	}
	return &user, nil
}

// InMemorySessionRepository keeps sessions for the process lifetime.
type InMemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewInMemorySessionRepository() *InMemorySessionRepository {
	return &InMemorySessionRepository{sessions: make(map[string]domain.Session)}
}

func (r *InMemorySessionRepository) Insert(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[session.ID]; exists {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeConflict,
			"session id already exists", nil)
	}
	r.sessions[session.ID] = *session
	return nil
}

func (r *InMemorySessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
			"admin session not found", nil)
	}
	return &session, nil
}

func (r *InMemorySessionRepository) Revoke(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil
	}
	if session.RevokedAt == nil {
		session.RevokedAt = &at
		r.sessions[id] = session
	}
	return nil
}
