package repositories

import (
	"github.com/google/uuid"

	"katalog/internal/models"
	"katalog/internal/pagination"
)

// CategoryRepository defines the interface for category data access.
// GetByID returns (nil, nil) when no record matches.
type CategoryRepository interface {
	List(filter CategoryFilter, page pagination.Request) ([]models.Category, int64, error)
	GetByID(id uuid.UUID) (*models.Category, error)
	Save(category *models.Category) error
	Delete(category *models.Category) error
}
