package database

import (
	"database/sql"
	"testing"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/models"

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

	if err := RunMigrations(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return db
}

func TestGetOrCreateStudent(t *testing.T) {
	db := newTestDB(t)

	id, err := GetOrCreateStudent(db, "Asha Verma", "R101")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}

	// Same roll resolves to the same student; the name is not rewritten.
	again, err := GetOrCreateStudent(db, "A. Verma", "R101")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if again != id {
		t.Errorf("second call id = %d, want %d", again, id)
	}

	student, err := GetStudentByRoll(db, "R101")
	if err != nil {
		t.Fatalf("GetStudentByRoll: %v", err)
	}
	if student.Name != "Asha Verma" {
		t.Errorf("name = %q, want original kept", student.Name)
	}

	count, err := CountStudents(db)
	if err != nil {
		t.Fatalf("CountStudents: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestCreateStudentRejectsDuplicateRoll(t *testing.T) {
	db := newTestDB(t)

	if err := CreateStudent(db, &models.Student{Name: "A", RollNo: "R200"}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := CreateStudent(db, &models.Student{Name: "B", RollNo: "R200"}); err == nil {
		t.Error("duplicate roll number must fail the unique constraint")
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := RunMigrations(db); err != nil {
		t.Fatalf("second migration pass: %v", err)
	}
}
