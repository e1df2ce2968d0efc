package vendorresponses

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the vendor response routes.
func RegisterRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/vendor-responses", ListVendorResponsesHandler(db))
	app.Post("/api/vendor-responses", SaveVendorResponseHandler(db))
}
