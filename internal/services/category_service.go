package services

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"katalog/internal/dto"
	"katalog/internal/models"
	"katalog/internal/pagination"
	"katalog/internal/repositories"
)

// CategoryService handles business logic related to categories. Unlike
// products, category updates are partial-merge: only fields present in the
// request overwrite stored values.
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	validate     *validator.Validate
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repositories.CategoryRepository) *CategoryService {
	v := validator.New()
	dto.RegisterValidations(v)
	return &CategoryService{
		categoryRepo: categoryRepo,
		validate:     v,
	}
}

// List returns the requested page of categories and the total match count.
func (s *CategoryService) List(filter repositories.CategoryFilter, page pagination.Request) ([]models.Category, int64, error) {
	return s.categoryRepo.List(filter, page)
}

// GetByID retrieves a single category. A malformed or unknown id yields
// ErrNotFound.
func (s *CategoryService) GetByID(id string) (*models.Category, error) {
	cid, err := parseID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	category, err := s.categoryRepo.GetByID(cid)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create validates the request and persists a new category.
func (s *CategoryService) Create(req dto.CategoryRequest) (*models.Category, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ValidationError{Messages: dto.Messages(err)}
	}

	now := time.Now()
	category := &models.Category{
		ID:        uuid.New(),
		Name:      *req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.categoryRepo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update merges the supplied fields into an existing category. A nil Name
// leaves the stored value untouched; UpdatedAt is refreshed either way.
func (s *CategoryService) Update(id string, req dto.CategoryRequest) (*models.Category, error) {
	cid, err := parseID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	category, err := s.categoryRepo.GetByID(cid)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category; the storage cascade takes its products with it.
// A malformed or unknown id yields ErrNotFound.
func (s *CategoryService) Delete(id string) error {
	cid, err := parseID(id)
	if err != nil {
		return ErrNotFound
	}
	category, err := s.categoryRepo.GetByID(cid)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	return s.categoryRepo.Delete(category)
}
