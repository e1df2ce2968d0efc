package database

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"
)

var seedComments = []string{
	"Too salty",
	"Good taste",
	"More variety please",
	"Undercooked",
	"Well cooked",
	"Portions are small",
	"Loved the dessert",
	"Vegetarian options needed",
	"Temperature was low",
	"Clean and fresh",
}

var seedFineReasons = []string{
	"Stale ingredients served",
	"Hygiene violation in kitchen",
	"Meal served late",
	"Insufficient quantity prepared",
	"Menu deviation without approval",
}

// SeedData fills the store with one month of synthetic mess activity:
// students, per-meal head counts, feedback ratings, a handful of fines and
// vendor responses for some of them. Safe to rerun; students are keyed by
// roll number and counts by (date, meal).
func SeedData(db *sql.DB, year int, month time.Month, nStudents int) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 1; i <= nStudents; i++ {
		_, err := db.Exec(
			`INSERT OR IGNORE INTO students (name, roll_no, email) VALUES (?, ?, ?)`,
			fmt.Sprintf("Student %d", i),
			fmt.Sprintf("R%03d", i),
			fmt.Sprintf("student%d@college.edu", i),
		)
		if err != nil {
			return err
		}
	}
	log.Printf("Seeded %d students", nStudents)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := start.AddDate(0, 1, -1).Day()

	meals := []string{"breakfast", "lunch", "dinner"}
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		for _, meal := range meals {
			studentCount := int64(nStudents/2 + rng.Intn(nStudents/2+1))
			facultyCount := int64(rng.Intn(15))
			guestCount := int64(rng.Intn(10))
			_, err := db.Exec(
				`INSERT OR IGNORE INTO food_counts
				 (count_date, meal, student_count, faculty_count, guest_count, total_count, recorded_by)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				date, meal, studentCount, facultyCount, guestCount,
				studentCount+facultyCount+guestCount, "Mess Supervisor",
			)
			if err != nil {
				return err
			}
		}
	}
	log.Printf("Seeded food counts for %d days", days)

	for i := 0; i < nStudents; i++ {
		studentID := int64(1 + rng.Intn(nStudents))
		day := 1 + rng.Intn(days)
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		rating := func() interface{} {
			if rng.Intn(4) == 0 {
				return nil
			}
			return 1 + rng.Intn(5)
		}
		_, err := db.Exec(
			`INSERT INTO student_feedback
			 (student_id, feedback_date, breakfast_rating, lunch_rating, dinner_rating, comments)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			studentID, date, rating(), rating(), rating(),
			seedComments[rng.Intn(len(seedComments))],
		)
		if err != nil {
			return err
		}
	}
	log.Printf("Seeded %d feedback rows", nStudents)

	nFines := 4 + rng.Intn(4)
	for i := 0; i < nFines; i++ {
		day := 1 + rng.Intn(days)
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		res, err := db.Exec(
			`INSERT INTO fines (fine_date, meal, reason, amount, imposed_by) VALUES (?, ?, ?, ?, ?)`,
			date, meals[rng.Intn(len(meals))],
			seedFineReasons[rng.Intn(len(seedFineReasons))],
			int64(100*(1+rng.Intn(10))), "Mess Committee",
		)
		if err != nil {
			return err
		}

		// Vendor answers roughly half the fines.
		if rng.Intn(2) == 0 {
			fineID, err := res.LastInsertId()
			if err != nil {
				return err
			}
			_, err = db.Exec(
				`INSERT INTO vendor_responses (fine_id, vendor_response, status) VALUES (?, ?, ?)`,
				fineID, "Issue acknowledged, corrective action taken.", "Submitted",
			)
			if err != nil {
				return err
			}
		}
	}
	log.Printf("Seeded %d fines", nFines)

	return nil
}
