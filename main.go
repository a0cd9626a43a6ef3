package main

import (
	"log"

	"shop_backend/config"
	"shop_backend/handlers"
	"shop_backend/middleware"
	"shop_backend/models"
	"shop_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	db := config.ConnectDatabase(cfg)
	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Shop Backend",
		ServerHeader: "Shop Backend Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(models.ErrorResponse(msg))
		},
	})

	middleware.SetupMiddleware(app, cfg)
	setupRoutes(app, db, cfg)
	middleware.SetupErrorHandler(app)

	log.Printf("🚀 Server starting on host %s in port %s", cfg.HOST, cfg.AppPort)

	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func setupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(db, cfg.JWTSecret)
	productHandler := handlers.NewProductHandler(db)
	orderHandler := handlers.NewOrderHandler(db)

	app.Get("/", healthHandler.Status)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	products := api.Group("/products")
	products.Get("/", productHandler.GetAllProducts)
	products.Get("/:id", productHandler.GetProduct)

	orders := api.Group("/orders", utils.AuthMiddleware(cfg.JWTSecret))
	orders.Post("/", orderHandler.CreateOrder)
	orders.Get("/my-orders", orderHandler.GetMyOrders)
}
