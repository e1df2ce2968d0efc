package foodquality

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the food quality aggregate route.
func RegisterRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/food-quality", GetFoodQualityHandler(db))
}
