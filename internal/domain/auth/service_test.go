package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/jmfrazier/pawtrack/pkg/errors"
)

func newTestService(repo Repository) *service {
	svc := NewService(Config{
		Secret:   "test-secret",
		TokenTTL: time.Hour,
	}, repo, newTestLogger())
	return svc.(*service)
}

func TestService_RegisterLoginAndRefresh(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	view, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Password: "password1",
	})
	require.NoError(t, err)
	require.Equal(t, UserView{Username: "alice"}, view)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Username: "alice",
		Password: "password1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AuthToken)

	claims, err := svc.ValidateToken(context.Background(), resp.AuthToken)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Username)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)

	refreshed, err := svc.Refresh(context.Background(), resp.AuthToken)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.AuthToken)

	newClaims, err := svc.ValidateToken(context.Background(), refreshed.AuthToken)
	require.NoError(t, err)
	require.Equal(t, "alice", newClaims.Username)
}

func TestService_RegisterRejectsInvalidCredentials(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	_, err := svc.Register(context.Background(), RegisterRequest{Username: " alice", Password: "password1"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "Username or Password cannot have whitespace", vErr.Message)
	require.Equal(t, "username", vErr.Location)
}

func TestService_DuplicateUsername(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterRequest{Username: "alice", Password: "password2"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "Username already in use", vErr.Message)
	require.Equal(t, "username", vErr.Location)
}

func TestService_DuplicateUsernameLostRace(t *testing.T) {
	// The pre-insert count sees nothing, but the store's uniqueness
	// constraint still fires; the caller sees the same rejection.
	repo := &racingRepo{}
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Password: "password1"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "Username already in use", vErr.Message)
	require.Equal(t, "username", vErr.Location)
}

func TestService_LoginMissingFields(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	_, err := svc.Login(context.Background(), LoginRequest{Username: "alice"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = svc.Login(context.Background(), LoginRequest{Password: "password1"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Password: "password1"})
	require.NoError(t, err)

	_, unknownErr := svc.Login(context.Background(), LoginRequest{Username: "nobody", Password: "password1"})
	require.True(t, apperrors.IsCode(unknownErr, "invalid_credentials"))

	_, wrongErr := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "password2"})
	require.True(t, apperrors.IsCode(wrongErr, "invalid_credentials"))

	// Unknown username and wrong password produce the exact same signal.
	require.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestService_RefreshMonotonicExpiry(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	base := time.Now().UTC().Truncate(time.Second)
	svc.now = func() time.Time { return base }

	// An old token with more lifetime left than a fresh one would get.
	longLived, _, err := issueToken("alice", []byte("test-secret"), 48*time.Hour, base, time.Time{})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), longLived)
	require.NoError(t, err)
	claims, err := svc.ValidateToken(context.Background(), refreshed.AuthToken)
	require.NoError(t, err)
	require.Equal(t, base.Add(48*time.Hour).Unix(), claims.ExpiresAt.Unix())

	// Refreshing within the same instant never shrinks the window.
	short, _, err := issueToken("alice", []byte("test-secret"), time.Hour, base, time.Time{})
	require.NoError(t, err)
	refreshed, err = svc.Refresh(context.Background(), short)
	require.NoError(t, err)
	newClaims, err := svc.ValidateToken(context.Background(), refreshed.AuthToken)
	require.NoError(t, err)
	require.False(t, newClaims.ExpiresAt.Before(base.Add(time.Hour)))
}

func TestService_RefreshWrongKey(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	foreign, _, err := issueToken("alice", []byte("other-secret"), time.Hour, time.Now(), time.Time{})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), foreign)
	require.True(t, apperrors.IsCode(err, "invalid_token"))
}

func TestService_RefreshExpired(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	expired, _, err := issueToken("alice", []byte("test-secret"), time.Hour, time.Now().Add(-2*time.Hour), time.Time{})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), expired)
	require.True(t, apperrors.IsCode(err, "invalid_token"))
}

func TestService_ValidateTokenMissing(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	_, err := svc.ValidateToken(context.Background(), "   ")
	require.True(t, apperrors.IsCode(err, "invalid_token"))
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type memoryRepo struct {
	users map[string]User
	seq   int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[string]User)}
}

func (m *memoryRepo) CountByUsername(_ context.Context, username string) (int64, error) {
	if _, ok := m.users[username]; ok {
		return 1, nil
	}
	return 0, nil
}

func (m *memoryRepo) Create(_ context.Context, username, passwordHash string) (User, error) {
	if _, ok := m.users[username]; ok {
		return User{}, ErrUsernameTaken
	}
	m.seq++
	user := User{
		ID:           m.seq,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.users[username] = user
	return user, nil
}

func (m *memoryRepo) GetByUsername(_ context.Context, username string) (User, bool, error) {
	user, ok := m.users[username]
	return user, ok, nil
}

// racingRepo simulates losing a create race to a concurrent duplicate insert.
type racingRepo struct{}

func (r *racingRepo) CountByUsername(context.Context, string) (int64, error) {
	return 0, nil
}

func (r *racingRepo) Create(context.Context, string, string) (User, error) {
	return User{}, ErrUsernameTaken
}

func (r *racingRepo) GetByUsername(context.Context, string) (User, bool, error) {
	return User{}, false, errors.New("not implemented")
}
