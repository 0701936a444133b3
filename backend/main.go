package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"brainhub/backend/config"
	"brainhub/backend/middleware"
	"brainhub/backend/repository"
	"brainhub/backend/routes"
	"brainhub/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	store := repository.NewGormStore(db)

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, store, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
