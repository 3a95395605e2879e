package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katalog/internal/dto"
	"katalog/internal/models"
	"katalog/internal/pagination"
	"katalog/internal/repositories"
	"katalog/internal/services"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func seedCategory(t *testing.T, repo *repositories.MockCategoryRepository, name string) *models.Category {
	t.Helper()
	now := time.Now()
	category := &models.Category{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Save(category))
	return category
}

func validProductRequest(categoryID string) dto.ProductRequest {
	return dto.ProductRequest{
		CategoryID: categoryID,
		Name:       "Pho Bo Special",
		ImageURL:   "https://example.com/pho.jpg",
		Price:      "1200000",
		Stock:      "15",
	}
}

func TestProductService_Create_Success(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()
	service := services.NewProductService(productRepo, categoryRepo)

	category := seedCategory(t, categoryRepo, "Noodles")

	req := validProductRequest(category.ID.String())
	req.Name = "  Pho Bo Special  "
	req.ImageURL = " https://example.com/pho.jpg "

	product, err := service.Create(req)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Pho Bo Special", product.Name)
	assert.Equal(t, "https://example.com/pho.jpg", product.ImageURL)
	assert.Equal(t, "1200000", product.Price.String())
	assert.Equal(t, "15", product.Stock.String())
	require.NotNil(t, product.CategoryID)
	assert.Equal(t, category.ID, *product.CategoryID)
	assert.Equal(t, product.CreatedAt, product.UpdatedAt)
	assert.Equal(t, 1, productRepo.Count())
}

func TestProductService_Create_MissingFieldsReportedTogether(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()
	service := services.NewProductService(productRepo, categoryRepo)

	_, err := service.Create(dto.ProductRequest{})

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{
		"category is required",
		"product name is required",
		"image URL is required",
		"price is required",
		"stock is required",
	}, verr.Messages)
	assert.Equal(t, 0, productRepo.Count())
}

func TestProductService_Create_InvalidPriceAndStockCollected(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()
	service := services.NewProductService(productRepo, categoryRepo)

	category := seedCategory(t, categoryRepo, "Noodles")

	req := validProductRequest(category.ID.String())
	req.Price = "abc"
	req.Stock = "-3"

	_, err := service.Create(req)

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"price is not valid", "stock is not valid"}, verr.Messages)
	assert.Equal(t, 0, productRepo.Count())
}

func TestProductService_Create_MalformedCategoryID(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()
	service := services.NewProductService(productRepo, categoryRepo)

	_, err := service.Create(validProductRequest("not-a-uuid"))

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"category can not be empty"}, verr.Messages)
}

func TestProductService_Create_UnknownCategoryWritesNothing(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()
	service := services.NewProductService(productRepo, categoryRepo)

	_, err := service.Create(validProductRequest(uuid.NewString()))

	assert.ErrorIs(t, err, services.ErrCategoryNotFound)
	assert.Equal(t, 0, productRepo.Count())
}

func TestProductService_Update_ReplacesEveryField(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()
	service := services.NewProductService(productRepo, categoryRepo)

	firstCategory := seedCategory(t, categoryRepo, "Noodles")
	secondCategory := seedCategory(t, categoryRepo, "Drinks")

	created, err := service.Create(validProductRequest(firstCategory.ID.String()))
	require.NoError(t, err)

	updated, err := service.Update(created.ID.String(), dto.ProductRequest{
		CategoryID: secondCategory.ID.String(),
		Name:       "Iced Jasmine Tea",
		ImageURL:   "https://example.com/tea.jpg",
		Price:      "25000.50",
		Stock:      "8",
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Iced Jasmine Tea", updated.Name)
	assert.Equal(t, "25000.50", updated.Price.String())
	assert.Equal(t, secondCategory.ID, *updated.CategoryID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	assert.Equal(t, 1, productRepo.Count())
}

func TestProductService_Update_RevalidatesCategoryReference(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()
	service := services.NewProductService(productRepo, categoryRepo)

	category := seedCategory(t, categoryRepo, "Noodles")
	created, err := service.Create(validProductRequest(category.ID.String()))
	require.NoError(t, err)

	_, err = service.Update(created.ID.String(), validProductRequest(uuid.NewString()))

	assert.ErrorIs(t, err, services.ErrCategoryNotFound)

	// The stored product is untouched.
	stored, err := service.GetByID(created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Pho Bo Special", stored.Name)
}

func TestProductService_Update_UnknownAndMalformedIDs(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()
	service := services.NewProductService(productRepo, categoryRepo)

	category := seedCategory(t, categoryRepo, "Noodles")

	_, err := service.Update(uuid.NewString(), validProductRequest(category.ID.String()))
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = service.Update("garbage", validProductRequest(category.ID.String()))
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProductService_Delete_SecondDeleteReportsNotFound(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()
	service := services.NewProductService(productRepo, categoryRepo)

	category := seedCategory(t, categoryRepo, "Noodles")
	created, err := service.Create(validProductRequest(category.ID.String()))
	require.NoError(t, err)

	require.NoError(t, service.Delete(created.ID.String()))
	assert.Equal(t, 0, productRepo.Count())

	assert.ErrorIs(t, service.Delete(created.ID.String()), services.ErrNotFound)
}

func TestProductService_GetByID_MalformedIDReadsAsNotFound(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()
	service := services.NewProductService(productRepo, categoryRepo)

	_, err := service.GetByID("definitely-not-a-uuid")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProductService_List_FiltersAndPages(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()
	service := services.NewProductService(productRepo, categoryRepo)

	category := seedCategory(t, categoryRepo, "Noodles")

	// Seven products match: name contains "pho", price inside [10, 20].
	for i, price := range []string{"10", "12", "14", "15", "16", "18", "20"} {
		req := validProductRequest(category.ID.String())
		req.Name = fmt.Sprintf("Pho Variant %d", i)
		req.Price = price
		_, err := service.Create(req)
		require.NoError(t, err)
	}
	// Noise: wrong name, price below range, price above range.
	for _, tweak := range []struct{ name, price string }{
		{"Bakso Urat Jumbo", "15"},
		{"Pho Budget Bowl", "9.99"},
		{"Pho Deluxe Bowl", "20.01"},
	} {
		req := validProductRequest(category.ID.String())
		req.Name = tweak.name
		req.Price = tweak.price
		_, err := service.Create(req)
		require.NoError(t, err)
	}

	minPrice := decimalFromString(t, "10")
	maxPrice := decimalFromString(t, "20")
	filter := repositories.ProductFilter{Name: "pho", MinPrice: &minPrice, MaxPrice: &maxPrice}

	page := pagination.NewRequest(1, 2)
	items, total, err := service.List(filter, page)

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(7), total)
	assert.Equal(t, 4, pagination.TotalPages(total, page.Size))

	// The last page holds the remainder.
	items, total, err = service.List(filter, pagination.NewRequest(3, 2))
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(7), total)
}
