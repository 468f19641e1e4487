package service

import (
	"context"
	"testing"
	"time"

	"jobtrack/internal/common"
	"jobtrack/internal/common/security"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest() *AuthService {
	config.AppConfig = &config.Config{
		JWTKey: []byte("test-secret"),
		JWTExp: time.Hour,
	}
	security.InitJWT()
	return NewAuthService(repository.NewMemoryUserRepository())
}

func TestRegister(t *testing.T) {
	svc := setupAuthTest()
	ctx := context.Background()

	resp, err := svc.Register(ctx, RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, "user", resp.Role)
	assert.NotEmpty(t, resp.Token)

	userID, role, err := security.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, userID)
	assert.Equal(t, "user", role)
}

func TestRegister_IgnoresRequestedRole(t *testing.T) {
	svc := setupAuthTest()

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Mallory",
		Email:    "mallory@example.com",
		Password: "secret1",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "user", resp.Role)
}

func TestRegister_Validation(t *testing.T) {
	svc := setupAuthTest()
	ctx := context.Background()

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing name", RegisterRequest{Email: "a@example.com", Password: "secret1"}},
		{"bad email", RegisterRequest{Name: "A", Email: "not-an-email", Password: "secret1"}},
		{"short password", RegisterRequest{Name: "A", Email: "a@example.com", Password: "12345"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := setupAuthTest()
	ctx := context.Background()

	first, err := svc.Register(ctx, RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Name: "Impostor", Email: "alice@example.com", Password: "secret2"})
	assert.ErrorIs(t, err, common.ErrConflict)

	// First account still works
	resp, err := svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, resp.ID)
	assert.Equal(t, "Alice", resp.Name)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := setupAuthTest()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestMe(t *testing.T) {
	svc := setupAuthTest()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	user, err := svc.Me(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Empty(t, user.HashedPassword)

	_, err = svc.Me(ctx, "no-such-id")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}
