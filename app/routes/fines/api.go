package fines

import (
	"database/sql"
	"errors"
	"log"
	"strconv"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/models"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/routes/export"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type createFineRequest struct {
	Date      string `json:"date" validate:"required"`
	Meal      string `json:"meal" validate:"required,oneof=breakfast lunch dinner"`
	Reason    string `json:"reason" validate:"required"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	ImposedBy string `json:"imposedBy" validate:"required"`
}

// ListFinesHandler returns fines for a date range with their vendor
// responses, optionally narrowed by response status.
func ListFinesHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end := c.Query("start"), c.Query("end")
		if start == "" || end == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "start and end query params required (YYYY-MM-DD)",
			})
		}

		filter := models.ResponseStatusFilter(c.Query("response_status", string(models.ResponseAll)))
		records, err := QueryFines(db, start, end, filter)
		if err != nil {
			log.Printf("Error querying fines: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(records)
	}
}

// ExportFinesHandler returns the same rows as the list endpoint, as a CSV
// attachment.
func ExportFinesHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end := c.Query("start"), c.Query("end")
		if start == "" || end == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "start and end query params required (YYYY-MM-DD)",
			})
		}

		filter := models.ResponseStatusFilter(c.Query("response_status", string(models.ResponseAll)))
		records, err := QueryFines(db, start, end, filter)
		if err != nil {
			log.Printf("Error querying fines: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, r.CSVRow())
		}
		return export.SendCSV(c, export.RangeFilename("fines", start, end), models.FineCSVHeader, rows)
	}
}

// CreateFineHandler records a new fine against the vendor. Every field is
// mandatory.
func CreateFineHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createFineRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
		}

		fine := &models.Fine{
			Date:      req.Date,
			Meal:      models.Meal(req.Meal),
			Reason:    req.Reason,
			Amount:    req.Amount,
			ImposedBy: req.ImposedBy,
		}
		if err := CreateFine(db, fine); err != nil {
			log.Printf("Error saving fine: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Fine imposed successfully",
			"id":      fine.ID,
		})
	}
}

// DeleteFineHandler removes a fine and its vendor response.
func DeleteFineHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fineID, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid fine ID"})
		}

		if err := DeleteFine(db, fineID); err != nil {
			if errors.Is(err, ErrFineNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fine not found"})
			}
			log.Printf("Error deleting fine: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		return c.JSON(fiber.Map{"success": true, "message": "Fine deleted successfully"})
	}
}
