package services_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"katalog/internal/dto"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"
)

// fakeHasher marks passwords instead of hashing them, so tests can see the
// hasher was actually used.
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (fakeHasher) Compare(hashed, plaintext string) error {
	if hashed != "hashed:"+plaintext {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

func validRegisterRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		DisplayName: "Budi Santoso",
		Email:       "budi@example.com",
		Password:    "secret123",
	}
}

func TestUserService_Register_DefaultsRoleAndHashesPassword(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo, fakeHasher{})

	user, err := service.Register(validRegisterRequest())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "customer", user.Role)
	assert.Equal(t, "hashed:secret123", user.Password)
	assert.Equal(t, 1, repo.Count())
}

func TestUserService_Register_BlankRoleStillDefaults(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo, fakeHasher{})

	req := validRegisterRequest()
	req.Role = "   "

	user, err := service.Register(req)

	require.NoError(t, err)
	assert.Equal(t, "customer", user.Role)
}

func TestUserService_Register_ExplicitRoleKept(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo, fakeHasher{})

	req := validRegisterRequest()
	req.Role = "admin"

	user, err := service.Register(req)

	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)
}

func TestUserService_Register_ValidationMessagesCollected(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo, fakeHasher{})

	_, err := service.Register(dto.RegisterRequest{
		DisplayName: "Al",
		Email:       "not-an-email",
		Password:    "ab",
	})

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{
		"name length must be between 5 and 50",
		"email format is not valid",
		"at least password length is 4",
	}, verr.Messages)
	assert.Equal(t, 0, repo.Count())
}

func TestUserService_Register_DuplicateEmailRejected(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo, fakeHasher{})

	_, err := service.Register(validRegisterRequest())
	require.NoError(t, err)

	req := validRegisterRequest()
	req.DisplayName = "Another Person"

	_, err = service.Register(req)

	assert.ErrorIs(t, err, services.ErrEmailTaken)
	assert.Equal(t, 1, repo.Count())
}

// racingUserRepository simulates a concurrent registration sneaking in between
// the uniqueness pre-check and the insert.
type racingUserRepository struct{}

func (racingUserRepository) GetByID(uuid.UUID) (*models.User, error) { return nil, nil }
func (racingUserRepository) GetByEmail(string) (*models.User, error) { return nil, nil }
func (racingUserRepository) ExistsByEmail(string) (bool, error)      { return false, nil }
func (racingUserRepository) Save(*models.User) error {
	return fmt.Errorf("failed to save user: %w", gorm.ErrDuplicatedKey)
}

func TestUserService_Register_DuplicateKeyBackstop(t *testing.T) {
	service := services.NewUserService(racingUserRepository{}, fakeHasher{})

	_, err := service.Register(validRegisterRequest())

	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestUserService_EmailExists(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo, fakeHasher{})

	exists, err := service.EmailExists("budi@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = service.Register(validRegisterRequest())
	require.NoError(t, err)

	exists, err = service.EmailExists("budi@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}
