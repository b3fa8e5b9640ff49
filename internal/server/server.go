package server

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"gudang/internal/apperrors"
	"gudang/internal/handlers"
	"gudang/internal/repositories"
	"gudang/internal/services"
)

// New assembles the Fiber app: middleware, error translation, entity
// routes and the health check. publisher may be nil to disable event
// publishing.
func New(db *gorm.DB, publisher services.EventPublisher) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	storeRepo := repositories.NewGORMStoreRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	productService := services.NewProductService(productRepo, publisher)
	storeService := services.NewStoreService(storeRepo, productRepo)
	categoryService := services.NewCategoryService(categoryRepo)

	handlers.NewStoreHandler(storeService).RegisterRoutes(app)
	handlers.NewProductHandler(productService).RegisterRoutes(app)
	handlers.NewCategoryHandler(categoryService).RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	return app
}

// errorHandler is the single translation point from errors to HTTP
// responses. Anything that is not a recognized API error becomes a 500
// with no internal detail in the body.
func errorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := apperrors.As(err); ok {
		return c.Status(appErr.Status).JSON(appErr)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	log.Printf("Unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal Server Error",
	})
}
