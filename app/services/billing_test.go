package services

import (
	"database/sql"
	"testing"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/database"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return db
}

func insertFoodCount(t *testing.T, db *sql.DB, date, meal string, total int64) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO food_counts (count_date, meal, student_count, faculty_count, guest_count, total_count)
		 VALUES (?, ?, ?, 0, 0, ?)`, date, meal, total, total)
	if err != nil {
		t.Fatalf("insert food count: %v", err)
	}
}

func TestGenerateBillingArithmetic(t *testing.T) {
	db := newTestDB(t)

	insertFoodCount(t, db, "2026-01-10", "breakfast", 100)
	insertFoodCount(t, db, "2026-01-10", "lunch", 150)
	insertFoodCount(t, db, "2026-01-10", "dinner", 90)
	if _, err := db.Exec(
		`INSERT INTO fines (fine_date, meal, reason, amount, imposed_by)
		 VALUES ('2026-01-10', 'lunch', 'a', 300, 'Warden'),
		        ('2026-01-10', 'dinner', 'b', 200, 'Warden')`); err != nil {
		t.Fatalf("insert fines: %v", err)
	}

	inserted, err := GenerateBilling(db, 150)
	if err != nil {
		t.Fatalf("GenerateBilling: %v", err)
	}
	if inserted != 1 {
		t.Fatalf("inserted = %d, want 1", inserted)
	}

	var maxFed, gross, fine, net int64
	err = db.QueryRow(
		`SELECT max_people_fed, gross_amount, fine_amount, net_amount FROM billing WHERE billing_date = '2026-01-10'`,
	).Scan(&maxFed, &gross, &fine, &net)
	if err != nil {
		t.Fatalf("read billing row: %v", err)
	}
	if maxFed != 150 {
		t.Errorf("max_people_fed = %d, want 150", maxFed)
	}
	if gross != 22500 {
		t.Errorf("gross_amount = %d, want 22500", gross)
	}
	if fine != 500 {
		t.Errorf("fine_amount = %d, want 500", fine)
	}
	if net != 22000 {
		t.Errorf("net_amount = %d, want 22000", net)
	}
}

func TestGenerateBillingMissingMealCountsAsZero(t *testing.T) {
	db := newTestDB(t)

	insertFoodCount(t, db, "2026-01-11", "lunch", 80)

	if _, err := GenerateBilling(db, 150); err != nil {
		t.Fatalf("GenerateBilling: %v", err)
	}

	var breakfast, dinner, maxFed int64
	err := db.QueryRow(
		`SELECT breakfast_count, dinner_count, max_people_fed FROM billing WHERE billing_date = '2026-01-11'`,
	).Scan(&breakfast, &dinner, &maxFed)
	if err != nil {
		t.Fatalf("read billing row: %v", err)
	}
	if breakfast != 0 || dinner != 0 {
		t.Errorf("absent meals = %d/%d, want 0/0", breakfast, dinner)
	}
	if maxFed != 80 {
		t.Errorf("max_people_fed = %d, want 80", maxFed)
	}
}

func TestGenerateBillingDoesNotOverwriteExistingDates(t *testing.T) {
	db := newTestDB(t)

	insertFoodCount(t, db, "2026-01-12", "lunch", 100)
	if _, err := GenerateBilling(db, 150); err != nil {
		t.Fatalf("first run: %v", err)
	}

	// Counts change after the snapshot was taken; a rerun must not touch it.
	if _, err := db.Exec(
		`UPDATE food_counts SET total_count = 999 WHERE count_date = '2026-01-12'`); err != nil {
		t.Fatalf("update counts: %v", err)
	}
	inserted, err := GenerateBilling(db, 150)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if inserted != 0 {
		t.Errorf("second run inserted = %d, want 0", inserted)
	}

	var gross int64
	db.QueryRow(`SELECT gross_amount FROM billing WHERE billing_date = '2026-01-12'`).Scan(&gross)
	if gross != 15000 {
		t.Errorf("gross_amount = %d, want untouched 15000", gross)
	}
}
