package repositories

import (
	"github.com/google/uuid"

	"katalog/internal/models"
	"katalog/internal/pagination"
)

// BannerRepository defines the interface for banner data access.
// GetByID returns (nil, nil) when no record matches.
type BannerRepository interface {
	List(filter BannerFilter, page pagination.Request) ([]models.Banner, int64, error)
	GetByID(id uuid.UUID) (*models.Banner, error)
	Save(banner *models.Banner) error
	Delete(banner *models.Banner) error
}
