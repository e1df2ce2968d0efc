package billing

import (
	"database/sql"
	"log"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/models"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/routes/export"

	"github.com/gofiber/fiber/v2"
)

// ListBillingHandler returns billing snapshots for a date range.
func ListBillingHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end := c.Query("start"), c.Query("end")
		if start == "" || end == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "start and end query params required (YYYY-MM-DD)",
			})
		}

		records, err := QueryBilling(db, start, end)
		if err != nil {
			log.Printf("Error querying billing: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(records)
	}
}

// ExportBillingHandler returns the same rows as the list endpoint, as a CSV
// attachment.
func ExportBillingHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end := c.Query("start"), c.Query("end")
		if start == "" || end == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "start and end query params required (YYYY-MM-DD)",
			})
		}

		records, err := QueryBilling(db, start, end)
		if err != nil {
			log.Printf("Error querying billing: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, r.CSVRow())
		}
		return export.SendCSV(c, export.RangeFilename("billing", start, end), models.BillingCSVHeader, rows)
	}
}
