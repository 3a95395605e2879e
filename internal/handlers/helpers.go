package handlers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"katalog/internal/services"
)

// Optional query criteria parse to nil rather than failing the request: a
// value that does not parse simply contributes no filter.

func parseUUIDPtr(s string) *uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &id
}

func parseDecimalPtr(s string) *decimal.Decimal {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &d
}

func parseBoolPtr(s string) *bool {
	if s == "" {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &b
}

func respondNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"errors": []string{"not found"},
	})
}

func respondInvalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errors": []string{"invalid request body"},
	})
}

// respondServiceError maps a service outcome to its status code and error
// envelope. Unexpected failures are logged and reported generically.
func respondServiceError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": verr.Messages,
		})
	case errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []string{"email already has taken"},
		})
	case errors.Is(err, services.ErrCategoryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"errors": []string{"category not found"},
		})
	case errors.Is(err, services.ErrNotFound):
		return respondNotFound(c)
	default:
		log.Printf("internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"errors": []string{"internal server error"},
		})
	}
}
