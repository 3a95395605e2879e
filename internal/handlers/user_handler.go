package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"katalog/internal/dto"
	"katalog/internal/services"
)

// UserHandler handles registration and login.
type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// RegisterRoutes registers the public user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/register", h.HandleRegister)
	router.Post("/login", h.HandleLogin)
}

// HandleRegister registers a new user. A taken email is rejected with the
// same 400-shaped error list as any other validation failure.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondInvalidBody(c)
	}

	user, err := h.userService.Register(req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"message":     "register success",
			"displayName": user.DisplayName,
			"email":       user.Email,
			"role":        user.Role,
		},
	})
}

// HandleLogin authenticates a user and issues a JWT token.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondInvalidBody(c)
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("login failed for %s: %v", req.Email, err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"errors": []string{"authentication failed"},
		})
	}

	return c.JSON(fiber.Map{
		"access_token": token,
	})
}
