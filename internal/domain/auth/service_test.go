package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"festa/internal/core/apperror"
	"festa/internal/core/id"
)

type memUserRepo struct {
	byEmail map[string]*User
	byID    map[id.ID]*User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*User{}, byID: map[id.ID]*User{}}
}

func (r *memUserRepo) Create(ctx context.Context, u *User) error {
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, userID id.ID) (*User, error) {
	if u, ok := r.byID[userID]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("user", userID.String())
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("user", email)
}

func (r *memUserRepo) Update(ctx context.Context, u *User) error {
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, userID id.ID) error { return nil }

func (r *memUserRepo) List(ctx context.Context, f UserFilter) ([]User, int, error) {
	out := make([]User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, len(out), nil
}

func (r *memUserRepo) Exists(ctx context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

type memTokenRepo struct {
	byHash map[string]*RefreshToken
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{byHash: map[string]*RefreshToken{}}
}

func (r *memTokenRepo) SaveRefreshToken(ctx context.Context, t *RefreshToken) error {
	r.byHash[t.TokenHash] = t
	return nil
}

func (r *memTokenRepo) GetRefreshToken(ctx context.Context, hash string) (*RefreshToken, error) {
	if t, ok := r.byHash[hash]; ok {
		return t, nil
	}
	return nil, apperror.NewNotFound("refresh_token", hash)
}

func (r *memTokenRepo) RevokeRefreshToken(ctx context.Context, tokenID id.ID, reason string) error {
	for _, t := range r.byHash {
		if t.ID == tokenID {
			now := time.Now()
			t.RevokedAt = &now
			t.RevokedReason = reason
		}
	}
	return nil
}

func (r *memTokenRepo) RevokeAllUserTokens(ctx context.Context, userID id.ID, reason string) error {
	for _, t := range r.byHash {
		if t.UserID == userID {
			now := time.Now()
			t.RevokedAt = &now
			t.RevokedReason = reason
		}
	}
	return nil
}

func (r *memTokenRepo) CleanupExpiredTokens(ctx context.Context) (int, error) { return 0, nil }

func newTestService() (*Service, *memUserRepo, *memTokenRepo) {
	users := newMemUserRepo()
	tokens := newMemTokenRepo()
	jwtSvc := NewJWTService(DefaultJWTConfig("test-secret-at-least-32-bytes-long"))
	svc := NewService(users, tokens, jwtSvc, DefaultServiceConfig())
	return svc, users, tokens
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterRequest{
		Email:       "ana@festa.com.br",
		Password:    "segredo123",
		DisplayName: "Ana",
		Role:        RoleSecretary,
	})
	require.NoError(t, err)
	assert.Equal(t, RoleSecretary, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "segredo123", user.PasswordHash)

	tokens, logged, err := svc.Login(ctx, Credentials{Email: "ana@festa.com.br", Password: "segredo123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotNil(t, logged.LastLoginAt)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "ana@festa.com.br", Password: "segredo123", Role: RoleSecretary})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Email: "ana@festa.com.br", Password: "outrasenha", Role: RoleAdmin})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
}

func TestRegisterEmployeeRequiresEmployeeLink(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "joao@festa.com.br",
		Password: "segredo123",
		Role:     RoleEmployee,
	})
	require.Error(t, err)

	empID := id.New()
	user, err := svc.Register(context.Background(), RegisterRequest{
		Email:      "joao@festa.com.br",
		Password:   "segredo123",
		Role:       RoleEmployee,
		EmployeeID: &empID,
	})
	require.NoError(t, err)
	require.NotNil(t, user.EmployeeID)
	assert.Equal(t, empID, *user.EmployeeID)
}

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "ana@festa.com.br", Password: "segredo123", Role: RoleAdmin})
	require.NoError(t, err)

	for i := 0; i < svc.config.MaxLoginAttempts; i++ {
		_, _, err = svc.Login(ctx, Credentials{Email: "ana@festa.com.br", Password: "errada"})
		require.Error(t, err)
	}

	user := users.byEmail["ana@festa.com.br"]
	assert.True(t, user.IsLocked())

	// Even the right password bounces while the lock holds.
	_, _, err = svc.Login(ctx, Credentials{Email: "ana@festa.com.br", Password: "segredo123"})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, _, tokens := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "ana@festa.com.br", Password: "segredo123", Role: RoleAdmin})
	require.NoError(t, err)
	pair, _, err := svc.Login(ctx, Credentials{Email: "ana@festa.com.br", Password: "segredo123"})
	require.NoError(t, err)

	next, err := svc.RefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	// The exchanged token is single use.
	_, err = svc.RefreshToken(ctx, pair.RefreshToken)
	require.Error(t, err)

	// The stored value is a hash, never the raw token.
	_, ok := tokens.byHash[next.RefreshToken]
	assert.False(t, ok)
}

func TestLogoutRevokesSessions(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "ana@festa.com.br", Password: "segredo123", Role: RoleAdmin})
	require.NoError(t, err)
	pair, _, err := svc.Login(ctx, Credentials{Email: "ana@festa.com.br", Password: "segredo123"})
	require.NoError(t, err)

	user := users.byEmail["ana@festa.com.br"]
	require.NoError(t, svc.Logout(ctx, user.ID))

	_, err = svc.RefreshToken(ctx, pair.RefreshToken)
	require.Error(t, err)
}

func TestChangePasswordRevokesAndRehashes(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "ana@festa.com.br", Password: "segredo123", Role: RoleAdmin})
	require.NoError(t, err)
	user := users.byEmail["ana@festa.com.br"]

	err = svc.ChangePassword(ctx, user.ID, ChangePasswordRequest{CurrentPassword: "errada", NewPassword: "novasenha1"})
	require.Error(t, err)

	err = svc.ChangePassword(ctx, user.ID, ChangePasswordRequest{CurrentPassword: "segredo123", NewPassword: "novasenha1"})
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("novasenha1")))
}

func TestJWTRoundTrip(t *testing.T) {
	jwtSvc := NewJWTService(DefaultJWTConfig("test-secret-at-least-32-bytes-long"))
	empID := id.New()
	user := NewUser("joao@festa.com.br", "x", RoleEmployee)
	user.DisplayName = "João"
	user.EmployeeID = &empID

	token, expiresAt, err := jwtSvc.GenerateAccessToken(user, "session-1")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))
	assert.Equal(t, 3, len(strings.Split(token, ".")))

	uc, err := jwtSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), uc.UserID)
	assert.Equal(t, "employee", uc.Role)
	assert.Equal(t, empID.String(), uc.EmployeeID)
	assert.Equal(t, "session-1", uc.SessionID)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	signer := NewJWTService(DefaultJWTConfig("secret-one-0000000000000000000000"))
	verifier := NewJWTService(DefaultJWTConfig("secret-two-0000000000000000000000"))

	user := NewUser("ana@festa.com.br", "x", RoleAdmin)
	token, _, err := signer.GenerateAccessToken(user, "")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}
