package feedback

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/database"
	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/models"

	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"
)

func newTestApp(t *testing.T) (*fiber.App, *sql.DB) {
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

	app := fiber.New()
	RegisterRoutes(app, db)
	return app, db
}

func submit(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("POST /api/feedback: %v", err)
	}
	return resp
}

func listFeedback(t *testing.T, app *fiber.App, start, end string) []models.FeedbackRecord {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/feedback?start="+start+"&end="+end, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("GET /api/feedback: %v", err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var records []models.FeedbackRecord
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
	return records
}

func TestSubmitFeedbackCreatesStudentAndAveragesItems(t *testing.T) {
	app, db := newTestApp(t)

	// Sub-ratings of zero must be excluded from the average, not counted:
	// (4 + 5 + 3) / 3 = 4.
	resp := submit(t, app, `{
		"student_name": "Asha Verma",
		"student_roll": "R101",
		"feedback_date": "2026-01-10",
		"meal_type": "Breakfast",
		"items": [
			{"taste": 4, "cleanliness": 5},
			{"taste": 3, "cleanliness": 0}
		],
		"overall_comment": "Good taste"
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	student, err := database.GetStudentByRoll(db, "R101")
	if err != nil {
		t.Fatalf("student was not created: %v", err)
	}
	if student.Name != "Asha Verma" {
		t.Errorf("student name = %q", student.Name)
	}

	records := listFeedback(t, app, "2026-01-01", "2026-01-31")
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	r := records[0]
	if r.BreakfastRating == nil || *r.BreakfastRating != 4 {
		t.Errorf("breakfastRating = %v, want 4", r.BreakfastRating)
	}
	if r.LunchRating != nil || r.DinnerRating != nil {
		t.Errorf("unsubmitted meals must stay null: lunch=%v dinner=%v", r.LunchRating, r.DinnerRating)
	}
	if r.Comments != "Good taste" {
		t.Errorf("comments = %q", r.Comments)
	}
}

func TestSubmitFeedbackPreservesOtherMealRatings(t *testing.T) {
	app, _ := newTestApp(t)

	submit(t, app, `{
		"student_name": "Ravi Nair", "student_roll": "R102",
		"feedback_date": "2026-01-12", "meal_type": "lunch",
		"items": [{"taste": 5, "cleanliness": 5}],
		"overall_comment": "Well cooked"
	}`)
	submit(t, app, `{
		"student_name": "Ravi Nair", "student_roll": "R102",
		"feedback_date": "2026-01-12", "meal_type": "breakfast",
		"items": [{"taste": 2, "cleanliness": 2}],
		"overall_comment": "Too salty"
	}`)

	records := listFeedback(t, app, "2026-01-12", "2026-01-12")
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want a single upserted row", len(records))
	}
	r := records[0]
	if r.LunchRating == nil || *r.LunchRating != 5 {
		t.Errorf("lunchRating = %v, want preserved 5", r.LunchRating)
	}
	if r.BreakfastRating == nil || *r.BreakfastRating != 2 {
		t.Errorf("breakfastRating = %v, want 2", r.BreakfastRating)
	}
	if r.Comments != "Too salty" {
		t.Errorf("comments = %q, want overwritten by latest submission", r.Comments)
	}
}

func TestSubmitFeedbackWithoutPositiveRatingsStoresNull(t *testing.T) {
	app, _ := newTestApp(t)

	submit(t, app, `{
		"student_name": "Unknown", "student_roll": "R103",
		"feedback_date": "2026-01-15", "meal_type": "dinner",
		"items": [{"taste": 0, "cleanliness": 0}],
		"overall_comment": "skipped the meal"
	}`)

	records := listFeedback(t, app, "2026-01-15", "2026-01-15")
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0].DinnerRating != nil {
		t.Errorf("dinnerRating = %v, want null when no positive sub-rating", records[0].DinnerRating)
	}
}

func TestSubmitFeedbackRejectsUnknownMeal(t *testing.T) {
	app, _ := newTestApp(t)

	resp := submit(t, app, `{"student_roll":"R104","feedback_date":"2026-01-10","meal_type":"supper"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestListFeedbackOrderAndRange(t *testing.T) {
	app, _ := newTestApp(t)

	submit(t, app, `{"student_name":"B","student_roll":"R202","feedback_date":"2026-01-10","meal_type":"lunch","items":[{"taste":3}]}`)
	submit(t, app, `{"student_name":"A","student_roll":"R201","feedback_date":"2026-01-10","meal_type":"lunch","items":[{"taste":4}]}`)
	submit(t, app, `{"student_name":"C","student_roll":"R203","feedback_date":"2026-01-20","meal_type":"lunch","items":[{"taste":5}]}`)

	records := listFeedback(t, app, "2026-01-01", "2026-01-31")
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	// Date descending, then roll ascending within the same date.
	if records[0].Date != "2026-01-20" {
		t.Errorf("first record date = %s, want 2026-01-20", records[0].Date)
	}
	if records[1].RollNumber != "R201" || records[2].RollNumber != "R202" {
		t.Errorf("rolls within date = %s, %s; want R201, R202", records[1].RollNumber, records[2].RollNumber)
	}

	// Out-of-range request returns an empty array, not an error.
	records = listFeedback(t, app, "2025-01-01", "2025-01-31")
	if len(records) != 0 {
		t.Errorf("out-of-range len = %d, want 0", len(records))
	}
}

func TestExportFeedbackCSVRendersNullsAsEmpty(t *testing.T) {
	app, _ := newTestApp(t)

	submit(t, app, `{"student_name":"Asha","student_roll":"R301","feedback_date":"2026-01-10","meal_type":"lunch","items":[{"taste":4,"cleanliness":4}],"overall_comment":"ok"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/feedback/csv?start=2026-01-01&end=2026-01-31", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("GET csv: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("csv status = %d, want 200", resp.StatusCode)
	}

	data, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv has %d lines, want 2", len(lines))
	}
	if want := "Asha,R301,2026-01-10,,4,,ok"; strings.TrimSpace(lines[1]) != want {
		t.Errorf("csv row = %q, want %q", lines[1], want)
	}
}
