package foodcounts

import (
	"database/sql"
	"log"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/models"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/routes/export"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type saveFoodCountRequest struct {
	Date         string `json:"date" validate:"required"`
	Meal         string `json:"meal" validate:"required,oneof=breakfast lunch dinner"`
	StudentCount int64  `json:"student_count" validate:"gte=0"`
	FacultyCount int64  `json:"faculty_count" validate:"gte=0"`
	GuestCount   int64  `json:"guest_count" validate:"gte=0"`
	RecordedBy   string `json:"recorded_by"`
}

// ListFoodCountsHandler returns food counts for a date range, optionally
// filtered to one meal.
func ListFoodCountsHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end := c.Query("start"), c.Query("end")
		if start == "" || end == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "start and end query params required (YYYY-MM-DD)",
			})
		}

		counts, err := QueryFoodCounts(db, start, end, models.Meal(c.Query("meal")))
		if err != nil {
			log.Printf("Error querying food counts: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(counts)
	}
}

// ExportFoodCountsHandler returns the same rows as the list endpoint, as a
// CSV attachment.
func ExportFoodCountsHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end := c.Query("start"), c.Query("end")
		if start == "" || end == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "start and end query params required (YYYY-MM-DD)",
			})
		}

		counts, err := QueryFoodCounts(db, start, end, models.Meal(c.Query("meal")))
		if err != nil {
			log.Printf("Error querying food counts: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		rows := make([][]string, 0, len(counts))
		for _, fc := range counts {
			rows = append(rows, fc.CSVRow())
		}
		return export.SendCSV(c, export.RangeFilename("food_counts", start, end), models.FoodCountCSVHeader, rows)
	}
}

// SaveFoodCountHandler upserts the head-count for a (date, meal) pair.
func SaveFoodCountHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req saveFoodCountRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date and meal are required"})
		}

		fc := &models.FoodCount{
			Date:         req.Date,
			MealType:     models.Meal(req.Meal),
			StudentCount: req.StudentCount,
			FacultyCount: req.FacultyCount,
			GuestCount:   req.GuestCount,
			RecordedBy:   req.RecordedBy,
		}
		if err := UpsertFoodCount(db, fc); err != nil {
			log.Printf("Error saving food count: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		return c.JSON(fiber.Map{"status": "success", "message": "Food count saved successfully"})
	}
}

// DebugFoodCountsHandler dumps the latest raw rows for troubleshooting.
func DebugFoodCountsHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		counts, err := QueryLatestFoodCounts(db, 20)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"total_records": len(counts), "data": counts})
	}
}
