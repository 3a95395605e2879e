package handlers

import (
	"github.com/gofiber/fiber/v2"

	"katalog/internal/dto"
	"katalog/internal/mapper"
	"katalog/internal/pagination"
	"katalog/internal/repositories"
	"katalog/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleList)
	router.Get("/products/:productId", h.HandleGetByID)
	router.Post("/products", h.HandleCreate)
	router.Put("/products/:productId", h.HandleUpdate)
	router.Patch("/products/:productId", h.HandleUpdate)
	router.Delete("/products/:productId", h.HandleDelete)
}

// HandleList returns a filtered, paginated product listing.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
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

// HandleGetByID returns a single product.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	product, err := h.productService.GetByID(c.Params("productId"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": mapper.ToProductResponse(product),
	})
}

// HandleCreate creates a product from a {"product": {...}} payload.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	req := h.parseEnvelope(c)

	product, err := h.productService.Create(req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"product": mapper.ToProductResponse(product),
	})
}

// HandleUpdate fully replaces a product's fields from a {"product": {...}}
// payload.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	req := h.parseEnvelope(c)

	product, err := h.productService.Update(c.Params("productId"), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"product": mapper.ToProductResponse(product),
	})
}

// HandleDelete removes a product.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.productService.Delete(c.Params("productId")); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "product deleted successfully",
	})
}

// parseEnvelope unwraps the product payload. A missing or unreadable body
// yields a zero request, which validation then rejects field by field.
func (h *ProductHandler) parseEnvelope(c *fiber.Ctx) dto.ProductRequest {
	var envelope dto.ProductEnvelope
	if err := c.BodyParser(&envelope); err != nil || envelope.Product == nil {
		return dto.ProductRequest{}
	}
	return *envelope.Product
}
