package feedback

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the student feedback routes.
func RegisterRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/feedback", ListFeedbackHandler(db))
	app.Get("/api/feedback/csv", ExportFeedbackHandler(db))
	app.Post("/api/feedback", SubmitFeedbackHandler(db))
}
