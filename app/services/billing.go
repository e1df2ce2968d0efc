package services

import (
	"database/sql"
	"log"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/models"
)

// GenerateBilling walks every distinct date with food counts and writes that
// day's billing snapshot: billable headcount is the maximum of the three meal
// totals (a missing meal counts as 0), gross is headcount times the per-person
// rate, and the day's fines are deducted for the net. Dates that already have
// a billing row are left untouched, so reruns never rewrite history.
//
// Returns the number of rows inserted.
func GenerateBilling(db *sql.DB, amountPerPerson int64) (int64, error) {
	rows, err := db.Query(`SELECT DISTINCT count_date FROM food_counts ORDER BY count_date ASC`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return 0, err
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	var inserted int64
	for _, date := range dates {
		n, err := generateBillingForDate(db, date, amountPerPerson)
		if err != nil {
			return inserted, err
		}
		inserted += n
	}

	log.Printf("Billing generation complete: %d date(s) scanned, %d row(s) inserted", len(dates), inserted)
	return inserted, nil
}

func generateBillingForDate(db *sql.DB, date string, amountPerPerson int64) (int64, error) {
	totals, err := mealTotals(db, date)
	if err != nil {
		return 0, err
	}

	maxFed := totals[models.Breakfast]
	for _, meal := range models.Meals {
		if totals[meal] > maxFed {
			maxFed = totals[meal]
		}
	}

	var fineAmount int64
	err = db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0) FROM fines WHERE fine_date = ?`, date,
	).Scan(&fineAmount)
	if err != nil {
		return 0, err
	}

	gross := maxFed * amountPerPerson
	net := gross - fineAmount

	res, err := db.Exec(
		`INSERT OR IGNORE INTO billing
		 (billing_date, breakfast_count, lunch_count, dinner_count,
		  max_people_fed, amount_per_person, gross_amount, fine_amount, net_amount)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		date, totals[models.Breakfast], totals[models.Lunch], totals[models.Dinner],
		maxFed, amountPerPerson, gross, fineAmount, net,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// mealTotals fetches the recorded total per meal for one date. Meals with no
// food-count row stay 0.
func mealTotals(db *sql.DB, date string) (map[models.Meal]int64, error) {
	totals := map[models.Meal]int64{}

	rows, err := db.Query(`SELECT meal, total_count FROM food_counts WHERE count_date = ?`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var meal models.Meal
		var total int64
		if err := rows.Scan(&meal, &total); err != nil {
			return nil, err
		}
		totals[meal] = total
	}
	return totals, rows.Err()
}
