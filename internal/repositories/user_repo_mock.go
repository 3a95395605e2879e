package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"katalog/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository. Like
// the real store it enforces email uniqueness on Save, so the check-then-insert
// race has the same backstop in tests.
type MockUserRepository struct {
	users map[uuid.UUID]models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]models.User),
	}
}

// GetByID returns the user, or (nil, nil) when absent.
func (r *MockUserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetByEmail returns the user with the email, or (nil, nil) when absent.
func (r *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// ExistsByEmail reports whether a user with the email is stored.
func (r *MockUserRepository) ExistsByEmail(email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Save inserts or overwrites the user by id, rejecting a duplicate email with
// gorm.ErrDuplicatedKey like the real store does.
func (r *MockUserRepository) Save(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, u := range r.users {
		if u.Email == user.Email && id != user.ID {
			return fmt.Errorf("failed to save user: %w", gorm.ErrDuplicatedKey)
		}
	}
	r.users[user.ID] = *user
	return nil
}

// Count returns the number of stored users. Test helper.
func (r *MockUserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
