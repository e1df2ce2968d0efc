package models

import "strconv"

// StudentFeedback is one student's ratings for a single date. Each meal has
// its own column; a NULL rating means the meal has not been rated yet. The
// comments field is shared across the three meals and holds whatever the most
// recent submission said.
type StudentFeedback struct {
	ID              int64  `json:"id"`
	StudentID       int64  `json:"student_id"`
	FeedbackDate    string `json:"feedback_date"`
	BreakfastRating *int64 `json:"breakfast_rating"`
	LunchRating     *int64 `json:"lunch_rating"`
	DinnerRating    *int64 `json:"dinner_rating"`
	Comments        string `json:"comments"`
}

// FeedbackRecord is the flat list/export row: feedback joined with the
// student's name and roll number.
type FeedbackRecord struct {
	ID              int64  `json:"id"`
	StudentName     string `json:"studentName"`
	RollNumber      string `json:"rollNumber"`
	Date            string `json:"date"`
	BreakfastRating *int64 `json:"breakfastRating"`
	LunchRating     *int64 `json:"lunchRating"`
	DinnerRating    *int64 `json:"dinnerRating"`
	Comments        string `json:"comments"`
}

// FeedbackCSVHeader is the column order for feedback CSV exports. It mirrors
// the JSON field order so the two formats cannot drift apart.
var FeedbackCSVHeader = []string{
	"studentName", "rollNumber", "date",
	"breakfastRating", "lunchRating", "dinnerRating", "comments",
}

// CSVRow renders the record in FeedbackCSVHeader order. Absent ratings become
// empty strings.
func (r FeedbackRecord) CSVRow() []string {
	return []string{
		r.StudentName, r.RollNumber, r.Date,
		csvRating(r.BreakfastRating), csvRating(r.LunchRating), csvRating(r.DinnerRating),
		r.Comments,
	}
}

func csvRating(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
