package handlers

import (
	"github.com/gofiber/fiber/v2"

	"katalog/internal/dto"
	"katalog/internal/pagination"
	"katalog/internal/repositories"
	"katalog/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleList)
	router.Get("/categories/:categoryId", h.HandleGetByID)
	router.Post("/categories", h.HandleCreate)
	router.Put("/categories/:categoryId", h.HandleUpdate)
	router.Patch("/categories/:categoryId", h.HandleUpdate)
	router.Delete("/categories/:categoryId", h.HandleDelete)
}

// HandleList returns a filtered, paginated category listing.
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
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

// HandleGetByID returns a single category.
func (h *CategoryHandler) HandleGetByID(c *fiber.Ctx) error {
	category, err := h.categoryService.GetByID(c.Params("categoryId"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": category,
	})
}

// HandleCreate creates a category.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondInvalidBody(c)
	}

	category, err := h.categoryService.Create(req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": category,
	})
}

// HandleUpdate merges the supplied fields into a category; absent fields are
// left untouched.
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondInvalidBody(c)
	}

	category, err := h.categoryService.Update(c.Params("categoryId"), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": category,
	})
}

// HandleDelete removes a category and, via the storage cascade, its products.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.categoryService.Delete(c.Params("categoryId")); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
