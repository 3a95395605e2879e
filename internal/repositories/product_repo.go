package repositories

import (
	"github.com/google/uuid"

	"katalog/internal/models"
	"katalog/internal/pagination"
)

// ProductRepository defines the interface for product data access.
// GetByID returns (nil, nil) when no record matches; absence is an outcome,
// not an error.
type ProductRepository interface {
	List(filter ProductFilter, page pagination.Request) ([]models.Product, int64, error)
	GetByID(id uuid.UUID) (*models.Product, error)
	Save(product *models.Product) error
	Delete(product *models.Product) error
}
