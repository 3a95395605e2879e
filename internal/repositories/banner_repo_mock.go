package repositories

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"katalog/internal/models"
	"katalog/internal/pagination"
)

// MockBannerRepository is an in-memory implementation of BannerRepository.
type MockBannerRepository struct {
	banners map[uuid.UUID]models.Banner
	mu      sync.RWMutex
}

// NewMockBannerRepository creates a new instance of MockBannerRepository.
func NewMockBannerRepository() *MockBannerRepository {
	return &MockBannerRepository{
		banners: make(map[uuid.UUID]models.Banner),
	}
}

// List filters, orders and pages the stored banners.
func (r *MockBannerRepository) List(filter BannerFilter, page pagination.Request) ([]models.Banner, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Banner
	for _, b := range r.banners {
		if filter.Match(&b) {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})
	total := int64(len(matched))
	return pageSlice(matched, page), total, nil
}

// GetByID returns the banner, or (nil, nil) when absent.
func (r *MockBannerRepository) GetByID(id uuid.UUID) (*models.Banner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	banner, ok := r.banners[id]
	if !ok {
		return nil, nil
	}
	return &banner, nil
}

// Save inserts or overwrites the banner by id.
func (r *MockBannerRepository) Save(banner *models.Banner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.banners[banner.ID] = *banner
	return nil
}

// Delete removes the banner by id.
func (r *MockBannerRepository) Delete(banner *models.Banner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.banners, banner.ID)
	return nil
}
