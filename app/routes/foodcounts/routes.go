package foodcounts

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the food count routes.
func RegisterRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/food-counts", ListFoodCountsHandler(db))
	app.Get("/api/food-counts/csv", ExportFoodCountsHandler(db))
	app.Post("/api/food-counts", SaveFoodCountHandler(db))
	app.Get("/api/debug/food-counts", DebugFoodCountsHandler(db))
}
