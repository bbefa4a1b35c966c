package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomyshh/frank-melloul-website/internal/domain/auth"
	authrepo "github.com/Tomyshh/frank-melloul-website/internal/infrastructure/repository/auth"
	"github.com/Tomyshh/frank-melloul-website/internal/utils/platformerrors"
)

func newService(t *testing.T, secret string, ttl time.Duration) *auth.Service {
	t.Helper()
	users := authrepo.NewInMemoryUserRepository()
	require.NoError(t, users.Seed("admin@melloul.test", "s3cret"))
	return auth.NewService(users, authrepo.NewInMemorySessionRepository(), secret, ttl, zerolog.Nop())
}

func TestSignIn_IssuesVerifiableToken(t *testing.T) {
	service := newService(t, "test-secret", time.Hour)

	token, session, err := service.SignIn(context.Background(), "admin@melloul.test", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "admin@melloul.test", session.Email)

	current, err := service.Current(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, current.ID)
}

func TestSignIn_WrongPassword(t *testing.T) {
	service := newService(t, "test-secret", time.Hour)

	_, _, err := service.SignIn(context.Background(), "admin@melloul.test", "wrong")
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeUnauthorized))
}

func TestSignIn_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	service := newService(t, "test-secret", time.Hour)

	_, _, err := service.SignIn(context.Background(), "nobody@melloul.test", "s3cret")
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeUnauthorized))
}

func TestSignOut_RevokesSessionImmediately(t *testing.T) {
	service := newService(t, "test-secret", time.Hour)

	token, _, err := service.SignIn(context.Background(), "admin@melloul.test", "s3cret")
	require.NoError(t, err)

	require.NoError(t, service.SignOut(context.Background(), token))

	_, err = service.Current(context.Background(), token)
	require.Error(t, err, "a revoked token is dead before its expiry")
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeUnauthorized))

	assert.NoError(t, service.SignOut(context.Background(), token), "revoking again is a no-op")
}

func TestCurrent_ExpiredSessionRejected(t *testing.T) {
	service := newService(t, "test-secret", -time.Minute)

	token, _, err := service.SignIn(context.Background(), "admin@melloul.test", "s3cret")
	require.NoError(t, err)

	_, err = service.Current(context.Background(), token)
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeUnauthorized))
}

func TestCurrent_TamperedTokenRejected(t *testing.T) {
	service := newService(t, "test-secret", time.Hour)
	other := newService(t, "different-secret", time.Hour)

	token, _, err := other.SignIn(context.Background(), "admin@melloul.test", "s3cret")
	require.NoError(t, err)

	_, err = service.Current(context.Background(), token)
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeUnauthorized))
}

func TestUnconfiguredSecretDisablesEverything(t *testing.T) {
	service := newService(t, "", time.Hour)

	_, _, err := service.SignIn(context.Background(), "admin@melloul.test", "s3cret")
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConfiguration))

	_, err = service.Current(context.Background(), "anything")
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConfiguration))
}

func TestSubscribe_ReceivesLifecycleEvents(t *testing.T) {
	service := newService(t, "test-secret", time.Hour)

	events, unsubscribe := service.Subscribe()
	defer unsubscribe()

	token, session, err := service.SignIn(context.Background(), "admin@melloul.test", "s3cret")
	require.NoError(t, err)
	require.NoError(t, service.SignOut(context.Background(), token))

	in := <-events
	assert.Equal(t, auth.EventSignedIn, in.Kind)
	assert.Equal(t, session.ID, in.SessionID)

	out := <-events
	assert.Equal(t, auth.EventSignedOut, out.Kind)
	assert.Equal(t, session.ID, out.SessionID)
}

func TestSessionActive(t *testing.T) {
	now := time.Now()
	revoked := now.Add(-time.Minute)

	tests := []struct {
		name    string
		session auth.Session
		want    bool
	}{
		{"live", auth.Session{ExpiresAt: now.Add(time.Hour)}, true},
		{"expired", auth.Session{ExpiresAt: now.Add(-time.Hour)}, false},
		{"revoked", auth.Session{ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.Active(now); got != tt.want {
				t.Errorf("Active() = %v, want %v", got, tt.want)
			}
		})
	}
}
