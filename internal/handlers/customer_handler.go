package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"katalog/internal/mapper"
	"katalog/internal/pagination"
	"katalog/internal/repositories"
	"katalog/internal/services"
)

// CustomerHandler exposes the public storefront reads: product and category
// browsing without authentication. It reuses the catalog services but never
// mutates anything.
type CustomerHandler struct {
	productService  *services.ProductService
	categoryService *services.CategoryService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(productService *services.ProductService, categoryService *services.CategoryService) *CustomerHandler {
	return &CustomerHandler{
		productService:  productService,
		categoryService: categoryService,
	}
}

// RegisterRoutes registers the public browse routes with the Fiber app.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/customer/products", h.HandleListProducts)
	router.Get("/customer/products/:productId", h.HandleGetProduct)
	router.Get("/customer/categories", h.HandleListCategories)
	router.Get("/customer/categories/:categoryId", h.HandleGetCategory)
}

// HandleListProducts returns the same filtered, paginated product listing as
// the admin surface.
func (h *CustomerHandler) HandleListProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		Name:       c.Query("name"),
		CategoryID: parseUUIDPtr(c.Query("categoryId")),
		MinPrice:   parseDecimalPtr(c.Query("minPrice")),
		MaxPrice:   parseDecimalPtr(c.Query("maxPrice")),
	}
	page := pagination.NewRequest(c.QueryInt("page", 0), c.QueryInt("size", pagination.DefaultSize))

	products, total, err := h.productService.List(filter, page)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"totalItems":  total,
			"products":    mapper.ToProductResponses(products),
			"totalPages":  pagination.TotalPages(total, page.Size),
			"currentPage": page.Page,
		},
	})
}

// HandleGetProduct returns a single product. This endpoint names the missing
// entity in its 404 body, unlike the generic catalog reads.
func (h *CustomerHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.productService.GetByID(c.Params("productId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"errors": []string{"product not found"},
			})
		}
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": mapper.ToProductResponse(product),
	})
}

// HandleListCategories returns the paginated category listing.
func (h *CustomerHandler) HandleListCategories(c *fiber.Ctx) error {
	filter := repositories.CategoryFilter{
		Name: c.Query("name"),
	}
	page := pagination.NewRequest(c.QueryInt("page", 0), c.QueryInt("size", pagination.DefaultSize))

	categories, total, err := h.categoryService.List(filter, page)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"totalItems":  total,
			"categories":  categories,
			"totalPages":  pagination.TotalPages(total, page.Size),
			"currentPage": page.Page,
		},
	})
}

// HandleGetCategory returns a single category.
func (h *CustomerHandler) HandleGetCategory(c *fiber.Ctx) error {
	category, err := h.categoryService.GetByID(c.Params("categoryId"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": category,
	})
}
