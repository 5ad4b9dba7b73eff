package service

import (
	"context"
	"testing"
	"time"

	infraRepo "github.com/ayumu-dev/regi-api/internal/infrastructure/repository"
	"github.com/ayumu-dev/regi-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(env *testEnv) *AuthService {
	jwtManager := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthService(infraRepo.NewUserRepository(env.DB), jwtManager)
}

func TestAuthService_CreateUserAndLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestAuthService(env)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, CreateUserInput{
		Name:     "Tanaka",
		Email:    "Tanaka@Example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "tanaka@example.com", user.Email)
	assert.Equal(t, "cashier", user.Role)
	assert.NotEqual(t, "supersecret", user.Password)

	result, err := svc.Login(ctx, "tanaka@example.com", "supersecret")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)
	assert.Equal(t, user.ID, result.User.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestAuthService(env)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{
		Name:     "Tanaka",
		Email:    "tanaka@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "tanaka@example.com", "wrong")
	require.Error(t, err)

	_, err = svc.Login(ctx, "nobody@example.com", "supersecret")
	require.Error(t, err)
}

func TestAuthService_Refresh(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestAuthService(env)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{
		Name:     "Tanaka",
		Email:    "tanaka@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, "tanaka@example.com", "supersecret")
	require.NoError(t, err)

	tokens, err := svc.Refresh(ctx, result.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	_, err = svc.Refresh(ctx, "not-a-token")
	require.Error(t, err)
}

func TestAuthService_CreateUser_Validation(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestAuthService(env)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Name: "A", Email: "", Password: "supersecret"})
	require.Error(t, err)

	_, err = svc.CreateUser(ctx, CreateUserInput{Name: "A", Email: "a@b.com", Password: "short"})
	require.Error(t, err)

	_, err = svc.CreateUser(ctx, CreateUserInput{Name: "A", Email: "a@b.com", Password: "supersecret", Role: "root"})
	require.Error(t, err)

	_, err = svc.CreateUser(ctx, CreateUserInput{Name: "A", Email: "a@b.com", Password: "supersecret"})
	require.NoError(t, err)

	// Duplicate email
	_, err = svc.CreateUser(ctx, CreateUserInput{Name: "B", Email: "a@b.com", Password: "supersecret"})
	require.Error(t, err)
}
