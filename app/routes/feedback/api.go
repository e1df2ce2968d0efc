package feedback

import (
	"database/sql"
	"log"
	"strings"
	"time"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/database"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/models"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/routes/export"

	"github.com/gofiber/fiber/v2"
)

type feedbackItem struct {
	Taste       int64 `json:"taste"`
	Cleanliness int64 `json:"cleanliness"`
}

type submitFeedbackRequest struct {
	StudentName    string         `json:"student_name"`
	StudentRoll    string         `json:"student_roll"`
	FeedbackDate   string         `json:"feedback_date"`
	MealType       string         `json:"meal_type"`
	Items          []feedbackItem `json:"items"`
	OverallComment string         `json:"overall_comment"`
}

// ListFeedbackHandler returns feedback for a date range as JSON.
func ListFeedbackHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end := c.Query("start"), c.Query("end")
		if start == "" || end == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "start and end query params required (YYYY-MM-DD)",
			})
		}

		records, err := QueryFeedback(db, start, end)
		if err != nil {
			log.Printf("Error querying feedback: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(records)
	}
}

// ExportFeedbackHandler returns the same rows as the list endpoint, as a CSV
// attachment.
func ExportFeedbackHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end := c.Query("start"), c.Query("end")
		if start == "" || end == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "start and end query params required (YYYY-MM-DD)",
			})
		}

		records, err := QueryFeedback(db, start, end)
		if err != nil {
			log.Printf("Error querying feedback: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, r.CSVRow())
		}
		return export.SendCSV(c, export.RangeFilename("feedback", start, end), models.FeedbackCSVHeader, rows)
	}
}

// SubmitFeedbackHandler records one meal's quality rating for a student and
// date, creating the student on first sight of the roll number.
func SubmitFeedbackHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req submitFeedbackRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if req.StudentName == "" {
			req.StudentName = "Unknown"
		}
		if req.StudentRoll == "" {
			req.StudentRoll = "Unknown"
		}
		if req.FeedbackDate == "" {
			req.FeedbackDate = time.Now().Format("2006-01-02")
		}
		meal := models.Meal(strings.ToLower(req.MealType))
		if req.MealType == "" {
			meal = models.Lunch
		}
		if !meal.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "meal_type must be one of breakfast, lunch, dinner",
			})
		}

		studentID, err := database.GetOrCreateStudent(db, req.StudentName, req.StudentRoll)
		if err != nil {
			log.Printf("Error resolving student %s: %v", req.StudentRoll, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		rating := mealQuality(req.Items)
		if err := UpsertFeedback(db, studentID, req.FeedbackDate, meal, rating, req.OverallComment); err != nil {
			log.Printf("Error saving feedback: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		return c.JSON(fiber.Map{"status": "success", "message": "Feedback saved successfully"})
	}
}

// mealQuality collapses per-item taste and cleanliness sub-ratings into one
// scalar: the truncated mean of all sub-ratings strictly greater than zero.
// Returns nil when no item carries a positive sub-rating, so an unrated meal
// is stored as NULL rather than a literal 0.
func mealQuality(items []feedbackItem) *int64 {
	var sum, n int64
	for _, item := range items {
		if item.Taste > 0 {
			sum += item.Taste
			n++
		}
		if item.Cleanliness > 0 {
			sum += item.Cleanliness
			n++
		}
	}
	if n == 0 {
		return nil
	}
	q := sum / n
	return &q
}
