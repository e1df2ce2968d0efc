package health

import (
	"database/sql"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/database"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the health check route.
func RegisterRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/health", HealthHandler(db))
}

// HealthHandler reports process status and database connectivity, using the
// student count as the probe query.
func HealthHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := database.CountStudents(db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "ERROR",
				"message": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"status":         "OK",
			"database":       "Connected",
			"students_count": count,
		})
	}
}
