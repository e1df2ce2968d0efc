package billing

import (
	"database/sql"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/models"
)

// QueryBilling returns billing snapshots within [start, end], oldest first.
func QueryBilling(db *sql.DB, start, end string) ([]models.BillingRecord, error) {
	query := `SELECT id, billing_date, breakfast_count, lunch_count, dinner_count,
			  max_people_fed, amount_per_person, gross_amount, fine_amount, net_amount
			  FROM billing
			  WHERE billing_date BETWEEN ? AND ?
			  ORDER BY billing_date ASC`

	rows, err := db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.BillingRecord{}
	for rows.Next() {
		var r models.BillingRecord
		err := rows.Scan(&r.ID, &r.Date, &r.BreakfastCount, &r.LunchCount, &r.DinnerCount,
			&r.MaxPeopleFed, &r.AmountPerPerson, &r.GrossAmount, &r.FineAmount, &r.NetAmount)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
