package services

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"katalog/internal/dto"
	"katalog/internal/models"
	"katalog/internal/pagination"
	"katalog/internal/repositories"
)

// ProductService handles business logic related to products. Product writes
// are full-replace: every mutable field is recomputed from the request, and
// the category reference is re-validated on update exactly as on create.
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	validate     *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *ProductService {
	v := validator.New()
	dto.RegisterValidations(v)
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		validate:     v,
	}
}

// List returns the requested page of products and the total match count.
func (s *ProductService) List(filter repositories.ProductFilter, page pagination.Request) ([]models.Product, int64, error) {
	return s.productRepo.List(filter, page)
}

// GetByID retrieves a single product. A malformed or unknown id yields
// ErrNotFound.
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	pid, err := parseID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	product, err := s.productRepo.GetByID(pid)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create validates the request, resolves the category reference and persists
// a new product. Nothing is written when validation fails or the category
// does not exist.
func (s *ProductService) Create(req dto.ProductRequest) (*models.Product, error) {
	categoryID, price, stock, err := s.parseFields(req)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	now := time.Now()
	product := &models.Product{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(req.Name),
		ImageURL:   strings.TrimSpace(req.ImageURL),
		Price:      price,
		Stock:      stock,
		CategoryID: &category.ID,
		Category:   category,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.productRepo.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update replaces every mutable field of an existing product from the
// request. Omitted fields fail validation; they are never defaulted to the
// stored values.
func (s *ProductService) Update(id string, req dto.ProductRequest) (*models.Product, error) {
	pid, err := parseID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	product, err := s.productRepo.GetByID(pid)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	categoryID, price, stock, err := s.parseFields(req)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	product.Name = strings.TrimSpace(req.Name)
	product.ImageURL = strings.TrimSpace(req.ImageURL)
	product.Price = price
	product.Stock = stock
	product.CategoryID = &category.ID
	product.Category = category
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product. A malformed or unknown id yields ErrNotFound, so
// a repeated delete reports the same outcome as the first.
func (s *ProductService) Delete(id string) error {
	pid, err := parseID(id)
	if err != nil {
		return ErrNotFound
	}
	product, err := s.productRepo.GetByID(pid)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.productRepo.Delete(product)
}

// parseFields runs struct validation and parses the text-typed fields. The
// category id must be uuid-shaped and price/stock must be non-negative
// decimals; violations are collected, not short-circuited.
func (s *ProductService) parseFields(req dto.ProductRequest) (uuid.UUID, decimal.Decimal, decimal.Decimal, error) {
	var zero decimal.Decimal
	if err := s.validate.Struct(req); err != nil {
		return uuid.Nil, zero, zero, &ValidationError{Messages: dto.Messages(err)}
	}

	categoryID, err := parseID(req.CategoryID)
	if err != nil {
		return uuid.Nil, zero, zero, &ValidationError{Messages: []string{"category can not be empty"}}
	}

	var errs []string
	price, err := parseAmount(req.Price)
	if err != nil {
		errs = append(errs, "price is not valid")
	}
	stock, err := parseAmount(req.Stock)
	if err != nil {
		errs = append(errs, "stock is not valid")
	}
	if len(errs) > 0 {
		return uuid.Nil, zero, zero, &ValidationError{Messages: errs}
	}
	return categoryID, price, stock, nil
}

// parseAmount parses caller-supplied text into a non-negative decimal.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, errNegativeAmount
	}
	return d, nil
}
