package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"katalog/internal/mapper"
	"katalog/internal/services"
)

// CartHandler exposes the customer cart endpoints. The cart itself is a
// referential stub: rows cascade away with their product or user, and no
// catalog logic reads them, so the handlers only echo the referenced product.
// Unlike the other entity families, a malformed product id here answers with
// a 400-style uuid syntax error instead of a 404.
type CartHandler struct {
	productService *services.ProductService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(productService *services.ProductService) *CartHandler {
	return &CartHandler{
		productService: productService,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/customer/carts", h.HandleList)
	router.Post("/customer/carts/:productId", h.HandleAdd)
	router.Put("/customer/carts/:productId", h.HandleUpdate)
	router.Delete("/customer/carts/:productId", h.HandleRemove)
}

// HandleList returns the authenticated customer's cart view.
func (h *CartHandler) HandleList(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"customerName":  "",
			"customerEmail": email,
			"carts":         []fiber.Map{},
			"itemCount":     0,
			"totalPrice":    0,
		},
	})
}

// HandleAdd puts a product into the cart view.
func (h *CartHandler) HandleAdd(c *fiber.Ctx) error {
	return h.respondWithProduct(c, fiber.StatusCreated)
}

// HandleUpdate refreshes a product entry in the cart view.
func (h *CartHandler) HandleUpdate(c *fiber.Ctx) error {
	return h.respondWithProduct(c, fiber.StatusOK)
}

// HandleRemove removes a product from the cart view.
func (h *CartHandler) HandleRemove(c *fiber.Ctx) error {
	raw := c.Params("productId")
	if _, err := uuid.Parse(raw); err != nil {
		return respondBadUUID(c, raw)
	}
	return c.JSON(fiber.Map{
		"message": "products has been removed",
	})
}

func (h *CartHandler) respondWithProduct(c *fiber.Ctx, status int) error {
	raw := c.Params("productId")
	if _, err := uuid.Parse(raw); err != nil {
		return respondBadUUID(c, raw)
	}

	product, err := h.productService.GetByID(raw)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return respondNotFound(c)
		}
		return respondServiceError(c, err)
	}

	resp := mapper.ToProductResponse(product)
	email, _ := c.Locals("email").(string)
	cartItem := fiber.Map{
		"product":  resp,
		"quantity": 1,
	}
	return c.Status(status).JSON(fiber.Map{
		"data": fiber.Map{
			"customerName":  "",
			"customerEmail": email,
			"carts":         []fiber.Map{cartItem},
			"itemCount":     1,
			"totalPrice":    resp.Price,
		},
	})
}

func respondBadUUID(c *fiber.Ctx, raw string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errors": []string{fmt.Sprintf("invalid input syntax for type uuid: %q", raw)},
	})
}
