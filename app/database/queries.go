package database

import (
	"database/sql"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/models"
)

// GetStudentByRoll looks a student up by roll number. Returns sql.ErrNoRows
// when the roll number is unseen.
func GetStudentByRoll(db *sql.DB, rollNo string) (*models.Student, error) {
	student := &models.Student{}
	var email sql.NullString
	query := `SELECT id, name, roll_no, email FROM students WHERE roll_no = ?`

	err := db.QueryRow(query, rollNo).Scan(&student.ID, &student.Name, &student.RollNo, &email)
	if err != nil {
		return nil, err
	}
	student.Email = email.String
	return student, nil
}

// CreateStudent inserts a new student and fills in the generated id.
func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (name, roll_no, email) VALUES (?, ?, ?)`

	res, err := db.Exec(query, s.Name, s.RollNo, s.Email)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// GetOrCreateStudent resolves a (name, roll) pair to a student id, creating
// the student on first sight of the roll number.
func GetOrCreateStudent(db *sql.DB, name, rollNo string) (int64, error) {
	student, err := GetStudentByRoll(db, rollNo)
	if err == nil {
		return student.ID, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	s := &models.Student{Name: name, RollNo: rollNo}
	if err := CreateStudent(db, s); err != nil {
		return 0, err
	}
	return s.ID, nil
}

// CountStudents returns the number of seeded/registered students. Used by the
// health check as a cheap connectivity probe.
func CountStudents(db *sql.DB) (int64, error) {
	var count int64
	err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&count)
	return count, err
}
