package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"katalog/internal/models"
	"katalog/internal/pagination"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// List returns the requested page of products matching the filter, together
// with the total match count. Results are ordered by creation time for stable
// pages.
func (r *GORMProductRepository) List(filter ProductFilter, page pagination.Request) ([]models.Product, int64, error) {
	scopes := filter.Scopes()

	var total int64
	if err := r.db.Model(&models.Product{}).Scopes(scopes...).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := r.db.Scopes(scopes...).
		Preload("Category").
		Order("created_at, id").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// GetByID retrieves a single product with its category, or (nil, nil) when
// the id does not resolve.
func (r *GORMProductRepository) GetByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Save inserts or updates the product, distinguished by whether the id
// pre-exists. The category association is written as a foreign key only.
func (r *GORMProductRepository) Save(product *models.Product) error {
	if err := r.db.Omit("Category").Save(product).Error; err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

// Delete removes the product. Dependent cart rows are removed by the
// database cascade.
func (r *GORMProductRepository) Delete(product *models.Product) error {
	if err := r.db.Delete(product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
