package models

import "strconv"

// FoodCount is the recorded head-count for one (date, meal). The total is
// always recomputed server-side as student + faculty + guest; a value sent by
// the client is ignored.
type FoodCount struct {
	ID           int64  `json:"id"`
	Date         string `json:"date"`
	MealType     Meal   `json:"mealType"`
	StudentCount int64  `json:"studentCount"`
	FacultyCount int64  `json:"facultyCount"`
	GuestCount   int64  `json:"guestCount"`
	TotalCount   int64  `json:"totalCount"`
	RecordedBy   string `json:"-"`
}

// FoodCountCSVHeader is the canonical column set for food-count CSV exports,
// matching the JSON endpoint field for field.
var FoodCountCSVHeader = []string{
	"date", "mealType", "studentCount", "facultyCount", "guestCount", "totalCount",
}

// CSVRow renders the record in FoodCountCSVHeader order.
func (f FoodCount) CSVRow() []string {
	return []string{
		f.Date, string(f.MealType),
		strconv.FormatInt(f.StudentCount, 10),
		strconv.FormatInt(f.FacultyCount, 10),
		strconv.FormatInt(f.GuestCount, 10),
		strconv.FormatInt(f.TotalCount, 10),
	}
}
