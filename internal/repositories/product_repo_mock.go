package repositories

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"katalog/internal/models"
	"katalog/internal/pagination"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[uuid.UUID]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uuid.UUID]models.Product),
	}
}

// List filters, orders and pages the stored products.
func (r *MockProductRepository) List(filter ProductFilter, page pagination.Request) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Product
	for _, p := range r.products {
		if filter.Match(&p) {
			matched = append(matched, p)
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

// GetByID returns the product, or (nil, nil) when absent.
func (r *MockProductRepository) GetByID(id uuid.UUID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// Save inserts or overwrites the product by id.
func (r *MockProductRepository) Save(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[product.ID] = *product
	return nil
}

// Delete removes the product by id.
func (r *MockProductRepository) Delete(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, product.ID)
	return nil
}

// Count returns the number of stored products. Test helper.
func (r *MockProductRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}

// pageSlice cuts the requested window out of an ordered result set.
func pageSlice[T any](items []T, page pagination.Request) []T {
	start := page.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + page.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
