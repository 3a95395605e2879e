package services_test

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katalog/internal/dto"
	"katalog/internal/repositories"
	"katalog/internal/services"
)

// TestMain suppresses logging during tests for cleaner output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func registeredAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	repo := repositories.NewMockUserRepository()
	hasher := fakeHasher{}
	userService := services.NewUserService(repo, hasher)
	authService := services.NewAuthService(repo, hasher, "test-secret")

	_, err := userService.Register(dto.RegisterRequest{
		DisplayName: "Budi Santoso",
		Email:       "budi@example.com",
		Password:    "secret123",
		Role:        "admin",
	})
	require.NoError(t, err)
	return authService
}

func TestAuthService_Login_IssuesTokenWithRoleClaims(t *testing.T) {
	authService := registeredAuthService(t)

	token, err := authService.Login("budi@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "budi@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
	assert.NotEmpty(t, claims["user_id"])
	assert.NotNil(t, claims["exp"])
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	authService := registeredAuthService(t)

	_, err := authService.Login("budi@example.com", "wrong-password")

	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	authService := registeredAuthService(t)

	_, err := authService.Login("nobody@example.com", "secret123")

	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestAuthService_ValidateToken_RejectsTampering(t *testing.T) {
	authService := registeredAuthService(t)

	token, err := authService.Login("budi@example.com", "secret123")
	require.NoError(t, err)

	_, err = authService.ValidateToken(token + "tampered")
	assert.Error(t, err)

	_, err = authService.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestAuthService_ValidateToken_RejectsForeignSecret(t *testing.T) {
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "budi@example.com",
		"role":  "admin",
	})
	signed, err := foreign.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	authService := registeredAuthService(t)

	_, err = authService.ValidateToken(signed)
	assert.Error(t, err)
}
