package models

// Student represents a mess resident. Students are created by seeding or on
// first feedback submission for an unseen roll number; the API never deletes
// them.
type Student struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	RollNo string `json:"roll_no"`
	Email  string `json:"email,omitempty"`
}
