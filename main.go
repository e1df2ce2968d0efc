package main

import (
	"log"
	"strings"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/config"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/database"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/routes/billing"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/routes/feedback"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/routes/fines"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/routes/foodcounts"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/routes/foodquality"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/routes/health"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/routes/vendorresponses"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	// Initialize configuration and database
	cfg := config.Load()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler (nightly billing generation)
	services.StartScheduler(db, cfg.AmountPerPerson)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName: "CMC Mess Management API",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// API routes
	feedback.RegisterRoutes(app, db)
	foodcounts.RegisterRoutes(app, db)
	foodquality.RegisterRoutes(app, db)
	fines.RegisterRoutes(app, db)
	vendorresponses.RegisterRoutes(app, db)
	billing.RegisterRoutes(app, db)
	health.RegisterRoutes(app, db)

	// Static front-end; unknown non-API paths fall back to the index page
	app.Static("/", "./static")
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		return c.SendFile("./static/index.html")
	})

	// Start server
	log.Printf("Server starting on %s", cfg.ListenAddr)
	log.Fatal(app.Listen(cfg.ListenAddr))
}
