package billing

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the billing routes. Billing rows are read-only
// over HTTP; generation runs as a batch pass (see app/services).
func RegisterRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/billing", ListBillingHandler(db))
	app.Get("/api/billing/csv", ExportBillingHandler(db))
}
