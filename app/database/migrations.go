package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the mess-management schema if it does not exist yet.
// Every statement is idempotent so the pass is safe to run on startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	queries := []string{
		`CREATE TABLE IF NOT EXISTS students (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			roll_no TEXT UNIQUE,
			email TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS food_counts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			count_date TEXT NOT NULL,
			meal TEXT NOT NULL CHECK (meal IN ('breakfast', 'lunch', 'dinner')),
			student_count INTEGER NOT NULL DEFAULT 0,
			faculty_count INTEGER NOT NULL DEFAULT 0,
			guest_count INTEGER NOT NULL DEFAULT 0,
			total_count INTEGER NOT NULL DEFAULT 0,
			recorded_by TEXT,
			UNIQUE (count_date, meal)
		)`,
		`CREATE TABLE IF NOT EXISTS student_feedback (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			student_id INTEGER NOT NULL REFERENCES students(id),
			feedback_date TEXT NOT NULL,
			breakfast_rating INTEGER,
			lunch_rating INTEGER,
			dinner_rating INTEGER,
			comments TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS fines (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			fine_date TEXT NOT NULL,
			meal TEXT NOT NULL CHECK (meal IN ('breakfast', 'lunch', 'dinner')),
			reason TEXT NOT NULL,
			amount INTEGER NOT NULL,
			imposed_by TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS vendor_responses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			fine_id INTEGER NOT NULL REFERENCES fines(id),
			vendor_response TEXT NOT NULL,
			submitted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			status TEXT NOT NULL DEFAULT 'Submitted'
		)`,
		`CREATE TABLE IF NOT EXISTS billing (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			billing_date TEXT NOT NULL UNIQUE,
			breakfast_count INTEGER NOT NULL DEFAULT 0,
			lunch_count INTEGER NOT NULL DEFAULT 0,
			dinner_count INTEGER NOT NULL DEFAULT 0,
			max_people_fed INTEGER NOT NULL DEFAULT 0,
			amount_per_person INTEGER NOT NULL DEFAULT 150,
			gross_amount INTEGER NOT NULL DEFAULT 0,
			fine_amount INTEGER NOT NULL DEFAULT 0,
			net_amount INTEGER NOT NULL DEFAULT 0
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_feedback_date ON student_feedback(feedback_date)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_student ON student_feedback(student_id, feedback_date)`,
		`CREATE INDEX IF NOT EXISTS idx_fines_date ON fines(fine_date)`,
		`CREATE INDEX IF NOT EXISTS idx_vendor_responses_fine ON vendor_responses(fine_id)`,
	}

	for _, q := range indexes {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating index: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
