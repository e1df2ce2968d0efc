package feedback

import (
	"database/sql"
	"fmt"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/models"
)

// QueryFeedback returns feedback rows within [start, end], joined with the
// student's name and roll number, newest date first then roll ascending.
func QueryFeedback(db *sql.DB, start, end string) ([]models.FeedbackRecord, error) {
	query := `SELECT sf.id, s.name, s.roll_no, sf.feedback_date,
			  sf.breakfast_rating, sf.lunch_rating, sf.dinner_rating, sf.comments
			  FROM student_feedback sf
			  LEFT JOIN students s ON s.id = sf.student_id
			  WHERE sf.feedback_date BETWEEN ? AND ?
			  ORDER BY sf.feedback_date DESC, s.roll_no ASC`

	rows, err := db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.FeedbackRecord{}
	for rows.Next() {
		var r models.FeedbackRecord
		var name, roll, comments sql.NullString
		var breakfast, lunch, dinner sql.NullInt64
		err := rows.Scan(&r.ID, &name, &roll, &r.Date, &breakfast, &lunch, &dinner, &comments)
		if err != nil {
			return nil, err
		}
		r.StudentName = name.String
		r.RollNumber = roll.String
		r.Comments = comments.String
		r.BreakfastRating = nullableRating(breakfast)
		r.LunchRating = nullableRating(lunch)
		r.DinnerRating = nullableRating(dinner)
		records = append(records, r)
	}
	return records, rows.Err()
}

// UpsertFeedback writes one meal's rating for a (student, date) pair. An
// existing row keeps the other two meals' ratings and only has the submitted
// meal's column and the shared comment overwritten; a brand-new row stores
// NULL for the meals not being submitted.
func UpsertFeedback(db *sql.DB, studentID int64, date string, meal models.Meal, rating *int64, comments string) error {
	var id int64
	err := db.QueryRow(
		`SELECT id FROM student_feedback WHERE student_id = ? AND feedback_date = ?`,
		studentID, date,
	).Scan(&id)

	switch {
	case err == sql.ErrNoRows:
		query := `INSERT INTO student_feedback
				  (student_id, feedback_date, breakfast_rating, lunch_rating, dinner_rating, comments)
				  VALUES (?, ?, ?, ?, ?, ?)`
		var breakfast, lunch, dinner *int64
		switch meal {
		case models.Breakfast:
			breakfast = rating
		case models.Lunch:
			lunch = rating
		case models.Dinner:
			dinner = rating
		}
		_, err := db.Exec(query, studentID, date, breakfast, lunch, dinner, comments)
		return err
	case err != nil:
		return err
	}

	// The meal value is restricted to the enum before it reaches the column
	// name, never taken from the request verbatim.
	query := fmt.Sprintf(
		`UPDATE student_feedback SET %s_rating = ?, comments = ? WHERE id = ?`, meal)
	_, err = db.Exec(query, rating, comments, id)
	return err
}

func nullableRating(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
