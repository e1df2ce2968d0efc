package foodquality

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetFoodQualityHandler returns per-meal average ratings and feedback counts
// for a date range. With a meal filter the keys are "<meal>_rating" and
// "<meal>_feedback_count"; without one, "avg_<meal>_rating" and
// "<meal>_feedback_count" for all three meals. Meals with no feedback in
// range are omitted.
func GetFoodQualityHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end := c.Query("start"), c.Query("end")
		if start == "" || end == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "start and end query params required (YYYY-MM-DD)",
			})
		}

		meal := models.Meal(c.Query("meal"))
		if meal != "" && !meal.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "meal must be one of breakfast, lunch, dinner",
			})
		}

		averages, err := QueryAverages(db, start, end, meal)
		if err != nil {
			log.Printf("Error getting average food quality: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		quality := fiber.Map{}
		for m, avg := range averages {
			if meal != "" {
				quality[fmt.Sprintf("%s_rating", m)] = avg.Rating
			} else {
				quality[fmt.Sprintf("avg_%s_rating", m)] = avg.Rating
			}
			quality[fmt.Sprintf("%s_feedback_count", m)] = avg.Count
		}
		return c.JSON(quality)
	}
}
