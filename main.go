package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"katalog/internal/dto"
	"katalog/internal/handlers"
	"katalog/internal/middleware"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"
	"katalog/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("JWT_SECRET", "katalog_dev_secret")
	viper.SetDefault("ADMIN_EMAIL", "admin@katalog.local")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := openDatabase(viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Banner{},
		&models.User{},
		&models.Cart{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional): token-exchange relay ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()

		if err := mqClient.RelayTokenEvents(); err != nil {
			log.Printf("Failed to start token relay: %v", err)
		}
	} else {
		log.Println("RABBITMQ_URL not set, token relay disabled.")
	}

	// --- Repositories ---
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	bannerRepo := repositories.NewGORMBannerRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Services ---
	hasher := services.NewBcryptHasher()
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo, categoryRepo)
	bannerService := services.NewBannerService(bannerRepo)
	userService := services.NewUserService(userRepo, hasher)
	authService := services.NewAuthService(userRepo, hasher, viper.GetString("JWT_SECRET"))

	seedAdmin(userService)

	// --- Handlers ---
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	bannerHandler := handlers.NewBannerHandler(bannerService)
	userHandler := handlers.NewUserHandler(userService, authService)
	customerHandler := handlers.NewCustomerHandler(productService, categoryService)
	cartHandler := handlers.NewCartHandler(productService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	// Public routes: registration, login and the storefront reads
	userHandler.RegisterRoutes(app)
	customerHandler.RegisterRoutes(app)

	// Catalog management is admin-only
	adminRoutes := app.Group("",
		middleware.AuthRequired(authService),
		middleware.RoleRequired("admin"),
	)
	categoryHandler.RegisterRoutes(adminRoutes)
	productHandler.RegisterRoutes(adminRoutes)
	bannerHandler.RegisterRoutes(adminRoutes)

	// Cart endpoints require any authenticated customer or admin
	cartRoutes := app.Group("",
		middleware.AuthRequired(authService),
		middleware.RoleRequired("customer", "admin"),
	)
	cartHandler.RegisterRoutes(cartRoutes)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase connects to Postgres when a DSN is configured and falls back
// to an embedded SQLite file for local development. TranslateError makes
// duplicate-key violations visible as gorm.ErrDuplicatedKey, which the user
// registry relies on as its uniqueness backstop.
func openDatabase(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{TranslateError: true}
	if dsn != "" {
		return gorm.Open(postgres.Open(dsn), config)
	}
	// Foreign keys are off by default in SQLite; the category cascade
	// depends on them.
	log.Println("DATABASE_DSN not set, using embedded SQLite database.")
	return gorm.Open(sqlite.Open("file:katalog.db?_foreign_keys=on"), config)
}

// seedAdmin makes sure an admin account exists so the catalog endpoints are
// reachable on a fresh database.
func seedAdmin(userService *services.UserService) {
	email := viper.GetString("ADMIN_EMAIL")
	exists, err := userService.EmailExists(email)
	if err != nil {
		log.Printf("Failed to check admin account: %v", err)
		return
	}
	if exists {
		return
	}

	_, err = userService.Register(dto.RegisterRequest{
		DisplayName: "Administrator",
		Email:       email,
		Password:    viper.GetString("ADMIN_PASSWORD"),
		Role:        "admin",
	})
	if err != nil {
		log.Printf("Failed to seed admin account: %v", err)
		return
	}
	log.Printf("Seeded admin account %s", email)
}
