package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"katalog/internal/models"
	"katalog/internal/pagination"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// List returns the requested page of categories matching the filter, together
// with the total match count.
func (r *GORMCategoryRepository) List(filter CategoryFilter, page pagination.Request) ([]models.Category, int64, error) {
	scopes := filter.Scopes()

	var total int64
	if err := r.db.Model(&models.Category{}).Scopes(scopes...).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	var categories []models.Category
	err := r.db.Scopes(scopes...).
		Order("created_at, id").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&categories).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, total, nil
}

// GetByID retrieves a single category, or (nil, nil) when the id does not
// resolve.
func (r *GORMCategoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

// Save inserts or updates the category.
func (r *GORMCategoryRepository) Save(category *models.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

// Delete removes the category. Referencing products are removed by the
// database cascade, not orphaned.
func (r *GORMCategoryRepository) Delete(category *models.Category) error {
	if err := r.db.Delete(category).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
