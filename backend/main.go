package main

import (
	"log"

	"mindwell/backend/config"
	"mindwell/backend/middleware"
	"mindwell/backend/predictor"
	"mindwell/backend/routes"
	"mindwell/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
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

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, x-auth-token",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	runner := predictor.New(cfg)
	routes.SetupRoutes(app, db, cfg, runner)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
