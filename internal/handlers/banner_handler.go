package handlers

import (
	"github.com/gofiber/fiber/v2"

	"katalog/internal/dto"
	"katalog/internal/pagination"
	"katalog/internal/repositories"
	"katalog/internal/services"
)

// BannerHandler handles HTTP requests for banners.
type BannerHandler struct {
	bannerService *services.BannerService
}

// NewBannerHandler creates a new BannerHandler.
func NewBannerHandler(bannerService *services.BannerService) *BannerHandler {
	return &BannerHandler{
		bannerService: bannerService,
	}
}

// RegisterRoutes registers the banner routes with the Fiber app.
func (h *BannerHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/banners", h.HandleList)
	router.Get("/banners/:bannerId", h.HandleGetByID)
	router.Post("/banners", h.HandleCreate)
	router.Put("/banners/:bannerId", h.HandleUpdate)
	router.Patch("/banners/:bannerId", h.HandleUpdate)
	router.Delete("/banners/:bannerId", h.HandleDelete)
}

// HandleList returns a filtered, paginated banner listing.
func (h *BannerHandler) HandleList(c *fiber.Ctx) error {
	filter := repositories.BannerFilter{
		Title:  c.Query("title"),
		Status: parseBoolPtr(c.Query("status")),
	}
	page := pagination.NewRequest(c.QueryInt("page", 0), c.QueryInt("size", pagination.DefaultSize))

	banners, total, err := h.bannerService.List(filter, page)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"totalItems":  total,
			"banners":     banners,
			"totalPages":  pagination.TotalPages(total, page.Size),
			"currentPage": page.Page,
		},
	})
}

// HandleGetByID returns a single banner.
func (h *BannerHandler) HandleGetByID(c *fiber.Ctx) error {
	banner, err := h.bannerService.GetByID(c.Params("bannerId"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": banner,
	})
}

// HandleCreate creates a banner.
func (h *BannerHandler) HandleCreate(c *fiber.Ctx) error {
	var req dto.BannerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondInvalidBody(c)
	}

	banner, err := h.bannerService.Create(req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": banner,
	})
}

// HandleUpdate merges the supplied fields into a banner; absent fields are
// left untouched.
func (h *BannerHandler) HandleUpdate(c *fiber.Ctx) error {
	var req dto.BannerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondInvalidBody(c)
	}

	banner, err := h.bannerService.Update(c.Params("bannerId"), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": banner,
	})
}

// HandleDelete removes a banner.
func (h *BannerHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.bannerService.Delete(c.Params("bannerId")); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
