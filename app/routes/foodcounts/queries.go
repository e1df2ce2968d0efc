package foodcounts

import (
	"database/sql"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/models"
)

// QueryFoodCounts returns head-counts within [start, end], optionally
// filtered to one meal, ordered by date then meal.
func QueryFoodCounts(db *sql.DB, start, end string, meal models.Meal) ([]models.FoodCount, error) {
	query := `SELECT id, count_date, meal, student_count, faculty_count, guest_count, total_count
			  FROM food_counts
			  WHERE count_date BETWEEN ? AND ?`
	args := []interface{}{start, end}

	if meal != "" {
		query += ` AND meal = ?`
		args = append(args, meal)
	}
	query += ` ORDER BY count_date ASC, meal ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []models.FoodCount{}
	for rows.Next() {
		var fc models.FoodCount
		err := rows.Scan(&fc.ID, &fc.Date, &fc.MealType,
			&fc.StudentCount, &fc.FacultyCount, &fc.GuestCount, &fc.TotalCount)
		if err != nil {
			return nil, err
		}
		counts = append(counts, fc)
	}
	return counts, rows.Err()
}

// UpsertFoodCount writes the head-count for a (date, meal), overwriting any
// previous record for the same pair. The total is recomputed here, never
// trusted from the caller.
func UpsertFoodCount(db *sql.DB, fc *models.FoodCount) error {
	fc.TotalCount = fc.StudentCount + fc.FacultyCount + fc.GuestCount

	var id int64
	err := db.QueryRow(
		`SELECT id FROM food_counts WHERE count_date = ? AND meal = ?`,
		fc.Date, fc.MealType,
	).Scan(&id)

	switch {
	case err == sql.ErrNoRows:
		query := `INSERT INTO food_counts
				  (count_date, meal, student_count, faculty_count, guest_count, total_count, recorded_by)
				  VALUES (?, ?, ?, ?, ?, ?, ?)`
		res, err := db.Exec(query, fc.Date, fc.MealType,
			fc.StudentCount, fc.FacultyCount, fc.GuestCount, fc.TotalCount, fc.RecordedBy)
		if err != nil {
			return err
		}
		fc.ID, err = res.LastInsertId()
		return err
	case err != nil:
		return err
	}

	query := `UPDATE food_counts
			  SET student_count = ?, faculty_count = ?, guest_count = ?, total_count = ?, recorded_by = ?
			  WHERE count_date = ? AND meal = ?`
	_, err = db.Exec(query, fc.StudentCount, fc.FacultyCount, fc.GuestCount, fc.TotalCount,
		fc.RecordedBy, fc.Date, fc.MealType)
	fc.ID = id
	return err
}

// QueryLatestFoodCounts returns the most recent raw rows for the debug
// endpoint.
func QueryLatestFoodCounts(db *sql.DB, limit int) ([]models.FoodCount, error) {
	query := `SELECT id, count_date, meal, student_count, faculty_count, guest_count, total_count
			  FROM food_counts ORDER BY count_date DESC LIMIT ?`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []models.FoodCount{}
	for rows.Next() {
		var fc models.FoodCount
		err := rows.Scan(&fc.ID, &fc.Date, &fc.MealType,
			&fc.StudentCount, &fc.FacultyCount, &fc.GuestCount, &fc.TotalCount)
		if err != nil {
			return nil, err
		}
		counts = append(counts, fc)
	}
	return counts, rows.Err()
}
