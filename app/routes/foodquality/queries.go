package foodquality

import (
	"database/sql"
	"fmt"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/models"
)

// MealAverage is one meal's aggregate over a date range. COUNT(column) skips
// NULLs, so unrated meals never dilute the average.
type MealAverage struct {
	Rating float64
	Count  int64
}

// QueryAverages computes the average rating and feedback count per meal for
// [start, end]. With meal set, only that meal is computed; meals with no
// ratings in range are left out of the result, matching the API's sparse
// response shape.
func QueryAverages(db *sql.DB, start, end string, meal models.Meal) (map[models.Meal]MealAverage, error) {
	meals := models.Meals
	if meal != "" {
		meals = []models.Meal{meal}
	}

	averages := map[models.Meal]MealAverage{}
	for _, m := range meals {
		query := fmt.Sprintf(
			`SELECT ROUND(AVG(%[1]s_rating), 2), COUNT(%[1]s_rating)
			 FROM student_feedback
			 WHERE feedback_date BETWEEN ? AND ? AND %[1]s_rating IS NOT NULL`, m)

		var avg sql.NullFloat64
		var count int64
		if err := db.QueryRow(query, start, end).Scan(&avg, &count); err != nil {
			return nil, err
		}
		if avg.Valid {
			averages[m] = MealAverage{Rating: avg.Float64, Count: count}
		}
	}
	return averages, nil
}
