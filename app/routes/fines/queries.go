package fines

import (
	"database/sql"
	"errors"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/models"
)

// ErrFineNotFound is returned when a fine id does not exist.
var ErrFineNotFound = errors.New("fine not found")

// QueryFines returns fines within [start, end] with their vendor response,
// newest first. The filter narrows to fines the vendor has or has not
// responded to; ResponseAll applies no extra condition.
func QueryFines(db *sql.DB, start, end string, filter models.ResponseStatusFilter) ([]models.FineRecord, error) {
	query := `SELECT f.id, f.fine_date, f.meal, f.reason, f.amount, f.imposed_by,
			  vr.vendor_response, vr.status
			  FROM fines f
			  LEFT JOIN vendor_responses vr ON f.id = vr.fine_id
			  WHERE f.fine_date BETWEEN ? AND ?`

	switch filter {
	case models.ResponseSubmitted:
		query += ` AND vr.vendor_response IS NOT NULL`
	case models.ResponseNotSubmitted:
		query += ` AND vr.vendor_response IS NULL`
	}
	query += ` ORDER BY f.fine_date DESC`

	rows, err := db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.FineRecord{}
	for rows.Next() {
		var r models.FineRecord
		var response, status sql.NullString
		err := rows.Scan(&r.ID, &r.Date, &r.Meal, &r.Reason, &r.Amount, &r.ImposedBy, &response, &status)
		if err != nil {
			return nil, err
		}
		if response.Valid {
			r.VendorResponse = &response.String
		}
		if status.Valid {
			r.ResponseStatus = &status.String
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CreateFine appends a new fine. Fines are never upserted; a date and meal
// can accumulate several.
func CreateFine(db *sql.DB, f *models.Fine) error {
	query := `INSERT INTO fines (fine_date, meal, reason, amount, imposed_by)
			  VALUES (?, ?, ?, ?, ?)`

	res, err := db.Exec(query, f.Date, f.Meal, f.Reason, f.Amount, f.ImposedBy)
	if err != nil {
		return err
	}
	f.ID, err = res.LastInsertId()
	return err
}

// DeleteFine removes a fine and any vendor response referencing it in one
// transaction, response first. Returns ErrFineNotFound when the id does not
// exist.
func DeleteFine(db *sql.DB, fineID int64) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM vendor_responses WHERE fine_id = ?`, fineID); err != nil {
		return err
	}

	res, err := tx.Exec(`DELETE FROM fines WHERE id = ?`, fineID)
	if err != nil {
		return err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrFineNotFound
	}

	return tx.Commit()
}
