package fines

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the fine routes.
func RegisterRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/fines", ListFinesHandler(db))
	app.Get("/api/fines/csv", ExportFinesHandler(db))
	app.Post("/api/fines", CreateFineHandler(db))
	app.Delete("/api/fines/:id", DeleteFineHandler(db))
}
