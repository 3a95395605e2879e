package services

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"katalog/internal/dto"
	"katalog/internal/models"
	"katalog/internal/repositories"
)

// DefaultRole is assigned when a registration supplies no role.
const DefaultRole = "customer"

// UserService handles user registration. It never stores plaintext
// passwords; hashing goes through the injected PasswordHasher.
type UserService struct {
	userRepo repositories.UserRepository
	hasher   PasswordHasher
	validate *validator.Validate
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, hasher PasswordHasher) *UserService {
	v := validator.New()
	dto.RegisterValidations(v)
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
		validate: v,
	}
}

// EmailExists reports whether the email is already registered.
func (s *UserService) EmailExists(email string) (bool, error) {
	return s.userRepo.ExistsByEmail(email)
}

// Register validates the request, rejects taken emails and persists a new
// user with a hashed password. The pre-check is only a fast path: the
// check-then-insert pair is not atomic, so a duplicate slipping past it is
// caught by the store's unique index and reported the same way.
func (s *UserService) Register(req dto.RegisterRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ValidationError{Messages: dto.Messages(err)}
	}

	taken, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = DefaultRole
	}

	now := time.Now()
	user := &models.User{
		ID:          uuid.New(),
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Password:    hashed,
		Role:        role,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.userRepo.Save(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}
