package repositories

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"katalog/internal/models"
	"katalog/internal/pagination"
)

// MockCategoryRepository is an in-memory implementation of CategoryRepository.
type MockCategoryRepository struct {
	categories map[uuid.UUID]models.Category
	mu         sync.RWMutex
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository.
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[uuid.UUID]models.Category),
	}
}

// List filters, orders and pages the stored categories.
func (r *MockCategoryRepository) List(filter CategoryFilter, page pagination.Request) ([]models.Category, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Category
	for _, c := range r.categories {
		if filter.Match(&c) {
			matched = append(matched, c)
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

// GetByID returns the category, or (nil, nil) when absent.
func (r *MockCategoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

// Save inserts or overwrites the category by id.
func (r *MockCategoryRepository) Save(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories[category.ID] = *category
	return nil
}

// Delete removes the category by id.
func (r *MockCategoryRepository) Delete(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.categories, category.ID)
	return nil
}
