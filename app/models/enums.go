package models

// Meal defines the three meals a mess day is divided into. Counts, ratings,
// fines and billing are all keyed at meal granularity.
type Meal string

const (
	Breakfast Meal = "breakfast"
	Lunch     Meal = "lunch"
	Dinner    Meal = "dinner"
)

// Meals lists the valid meals in serving order.
var Meals = []Meal{Breakfast, Lunch, Dinner}

// IsValid reports whether m is one of the three known meals.
func (m Meal) IsValid() bool {
	switch m {
	case Breakfast, Lunch, Dinner:
		return true
	}
	return false
}

// ResponseStatusFilter defines the vendor response filters for fine listings.
type ResponseStatusFilter string

const (
	ResponseAll          ResponseStatusFilter = "all"
	ResponseSubmitted    ResponseStatusFilter = "submitted"
	ResponseNotSubmitted ResponseStatusFilter = "not_submitted"
)

// ResponseStatusSubmitted is the default status stored on a vendor response.
const ResponseStatusSubmitted = "Submitted"
