package auth

import (
	"context"
	"testing"
	"time"

	"github.com/go-sessiongate/sessiongate/internal/config"
	"github.com/go-sessiongate/sessiongate/internal/core"
	"github.com/go-sessiongate/sessiongate/internal/directory"
	"github.com/go-sessiongate/sessiongate/internal/metrics"
	"github.com/go-sessiongate/sessiongate/internal/models"
	"github.com/go-sessiongate/sessiongate/internal/password"
	"github.com/go-sessiongate/sessiongate/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDirectory serves a fixed user set.
type stubDirectory struct {
	users map[string]models.User
}

func (d *stubDirectory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := d.users[email]
	if !ok {
		return nil, directory.ErrUserNotFound
	}
	copied := user
	return &copied, nil
}

func (d *stubDirectory) Name() string { return "stub" }

// recordingGate counts consumptions per class and denies once a
// class's scripted budget runs out.
type recordingGate struct {
	budget map[string]int
	calls  map[string][]string
}

func newRecordingGate(originBudget, accountBudget int) *recordingGate {
	return &recordingGate{
		budget: map[string]int{"origin": originBudget, "account": accountBudget},
		calls:  map[string][]string{},
	}
}

func (g *recordingGate) TryConsume(
	ctx context.Context,
	class, identity string,
) (*core.RateDecision, error) {
	g.calls[class] = append(g.calls[class], identity)
	g.budget[class]--
	if g.budget[class] < 0 {
		return &core.RateDecision{
			Allowed: false,
			ResetAt: time.Now().Add(30 * time.Second),
		}, nil
	}
	return &core.RateDecision{Allowed: true}, nil
}

func (g *recordingGate) Name() string { return "recording" }

func newTestService(t *testing.T, gate core.RateGate) (*Service, *stubDirectory) {
	t.Helper()

	hash, err := password.Hash("pw")
	require.NoError(t, err)

	dir := &stubDirectory{users: map[string]models.User{
		"a@x.com": {ID: "1", Email: "a@x.com", PasswordHash: hash},
	}}
	tokens := token.NewLocalTokenProvider(&config.Config{
		BaseURL:         "http://localhost:8080",
		JWTSecret:       "test-secret",
		SessionLifetime: 24 * time.Hour,
	})

	return NewService(dir, tokens, gate, metrics.NewNoopMetrics()), dir
}

func TestLogin_Success(t *testing.T) {
	gate := newRecordingGate(10, 10)
	svc, _ := newTestService(t, gate)

	result, err := svc.Login(context.Background(), "a@x.com", "pw", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, core.LoginSucceeded, result.Status)
	require.NotNil(t, result.Token)
	assert.NotEmpty(t, result.Token.TokenString)

	// Token claims decode back to the submitted email.
	user, err := svc.CurrentUser(context.Background(), result.Token.TokenString)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	// Origin gate consumed once, account gate untouched.
	assert.Len(t, gate.calls["origin"], 1)
	assert.Empty(t, gate.calls["account"])

	// The returned user is redacted.
	require.NotNil(t, result.User)
	assert.Empty(t, result.User.PasswordHash)
}

func TestLogin_UnknownAccountSkipsAccountGate(t *testing.T) {
	gate := newRecordingGate(10, 10)
	svc, _ := newTestService(t, gate)

	result, err := svc.Login(context.Background(), "b@x.com", "x", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, core.LoginFailed, result.Status)
	assert.Nil(t, result.Token)

	assert.Len(t, gate.calls["origin"], 1)
	assert.Empty(t, gate.calls["account"], "unknown accounts must not burn account limiter state")
}

func TestLogin_WrongPasswordConsumesAccountGate(t *testing.T) {
	gate := newRecordingGate(10, 10)
	svc, _ := newTestService(t, gate)

	result, err := svc.Login(context.Background(), "a@x.com", "wrong", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, core.LoginFailed, result.Status)

	require.Len(t, gate.calls["account"], 1)
	assert.Equal(t, "login:1", gate.calls["account"][0])
}

func TestLogin_BlockedByOriginGate(t *testing.T) {
	gate := newRecordingGate(0, 10)
	svc, _ := newTestService(t, gate)

	result, err := svc.Login(context.Background(), "a@x.com", "pw", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, core.LoginBlockedOrigin, result.Status)
	assert.Greater(t, result.RetryAfterSeconds, 0)
	assert.Nil(t, result.Token)

	// Blocked before any directory or credential work.
	assert.Empty(t, gate.calls["account"])
}

func TestLogin_BlockedByAccountGate(t *testing.T) {
	gate := newRecordingGate(10, 0)
	svc, _ := newTestService(t, gate)

	result, err := svc.Login(context.Background(), "a@x.com", "wrong", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, core.LoginBlockedAccount, result.Status)
	assert.Greater(t, result.RetryAfterSeconds, 0)
}

func TestLogin_EmptyPassword(t *testing.T) {
	gate := newRecordingGate(10, 10)
	svc, _ := newTestService(t, gate)

	_, err := svc.Login(context.Background(), "a@x.com", "", "10.0.0.1")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestLogin_MissingSigningSecret(t *testing.T) {
	gate := newRecordingGate(10, 10)

	hash, err := password.Hash("pw")
	require.NoError(t, err)
	dir := &stubDirectory{users: map[string]models.User{
		"a@x.com": {ID: "1", Email: "a@x.com", PasswordHash: hash},
	}}
	tokens := token.NewLocalTokenProvider(&config.Config{SessionLifetime: 24 * time.Hour})
	svc := NewService(dir, tokens, gate, metrics.NewNoopMetrics())

	// Correct credentials still must not produce an unsigned session.
	_, err = svc.Login(context.Background(), "a@x.com", "pw", "10.0.0.1")
	assert.ErrorIs(t, err, token.ErrMissingSecret)
}

func TestIsAuthenticated(t *testing.T) {
	gate := newRecordingGate(10, 10)
	svc, _ := newTestService(t, gate)

	result, err := svc.Login(context.Background(), "a@x.com", "pw", "10.0.0.1")
	require.NoError(t, err)

	assert.True(t, svc.IsAuthenticated(context.Background(), result.Token.TokenString))
	assert.False(t, svc.IsAuthenticated(context.Background(), ""))
	assert.False(t, svc.IsAuthenticated(context.Background(), "garbage"))
}

func TestCurrentUser_RedactsHash(t *testing.T) {
	gate := newRecordingGate(10, 10)
	svc, _ := newTestService(t, gate)

	result, err := svc.Login(context.Background(), "a@x.com", "pw", "10.0.0.1")
	require.NoError(t, err)

	user, err := svc.CurrentUser(context.Background(), result.Token.TokenString)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}

func TestCurrentUser_DeletedAccountInvalidatesSession(t *testing.T) {
	gate := newRecordingGate(10, 10)
	svc, dir := newTestService(t, gate)

	result, err := svc.Login(context.Background(), "a@x.com", "pw", "10.0.0.1")
	require.NoError(t, err)

	delete(dir.users, "a@x.com")

	_, err = svc.CurrentUser(context.Background(), result.Token.TokenString)
	assert.ErrorIs(t, err, directory.ErrUserNotFound)
}

func TestCurrentUser_NoSession(t *testing.T) {
	gate := newRecordingGate(10, 10)
	svc, _ := newTestService(t, gate)

	_, err := svc.CurrentUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = svc.CurrentUser(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrNoSession)
}
