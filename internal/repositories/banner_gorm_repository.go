package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"katalog/internal/models"
	"katalog/internal/pagination"
)

// GORMBannerRepository is a GORM implementation of BannerRepository.
type GORMBannerRepository struct {
	db *gorm.DB
}

// NewGORMBannerRepository creates a new instance of GORMBannerRepository.
func NewGORMBannerRepository(db *gorm.DB) *GORMBannerRepository {
	return &GORMBannerRepository{
		db: db,
	}
}

// List returns the requested page of banners matching the filter, together
// with the total match count.
func (r *GORMBannerRepository) List(filter BannerFilter, page pagination.Request) ([]models.Banner, int64, error) {
	scopes := filter.Scopes()

	var total int64
	if err := r.db.Model(&models.Banner{}).Scopes(scopes...).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count banners: %w", err)
	}

	var banners []models.Banner
	err := r.db.Scopes(scopes...).
		Order("created_at, id").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&banners).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list banners: %w", err)
	}
	return banners, total, nil
}

// GetByID retrieves a single banner, or (nil, nil) when the id does not
// resolve.
func (r *GORMBannerRepository) GetByID(id uuid.UUID) (*models.Banner, error) {
	var banner models.Banner
	if err := r.db.First(&banner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get banner by ID %s: %w", id, err)
	}
	return &banner, nil
}

// Save inserts or updates the banner.
func (r *GORMBannerRepository) Save(banner *models.Banner) error {
	if err := r.db.Save(banner).Error; err != nil {
		return fmt.Errorf("failed to save banner: %w", err)
	}
	return nil
}

// Delete removes the banner.
func (r *GORMBannerRepository) Delete(banner *models.Banner) error {
	if err := r.db.Delete(banner).Error; err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}
	return nil
}
