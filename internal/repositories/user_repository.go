package repositories

import (
	"github.com/google/uuid"

	"katalog/internal/models"
)

// UserRepository defines the interface for user data access.
// GetByID and GetByEmail return (nil, nil) when no record matches.
// ExistsByEmail is the fast-path uniqueness check before registration; the
// unique index on email is the real guarantee.
type UserRepository interface {
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	ExistsByEmail(email string) (bool, error)
	Save(user *models.User) error
}
