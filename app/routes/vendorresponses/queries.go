package vendorresponses

import (
	"database/sql"
	"errors"

	"github.com/pravesh8951/CMC-Mess-FeedbackPortal/app/models"
)

// ErrFineNotFound is returned when a response targets a fine id that does
// not exist. A vendor response never exists without its fine.
var ErrFineNotFound = errors.New("fine not found")

// QueryVendorResponses returns vendor responses, newest submission first,
// optionally narrowed to one fine.
func QueryVendorResponses(db *sql.DB, fineID int64) ([]models.VendorResponse, error) {
	query := `SELECT id, fine_id, vendor_response, submitted_at, status
			  FROM vendor_responses`
	args := []interface{}{}

	if fineID > 0 {
		query += ` WHERE fine_id = ?`
		args = append(args, fineID)
	}
	query += ` ORDER BY submitted_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := []models.VendorResponse{}
	for rows.Next() {
		var vr models.VendorResponse
		err := rows.Scan(&vr.ID, &vr.FineID, &vr.VendorResponse, &vr.SubmittedAt, &vr.Status)
		if err != nil {
			return nil, err
		}
		responses = append(responses, vr)
	}
	return responses, rows.Err()
}

// UpsertVendorResponse stores the vendor's reply to a fine, keyed by fine id:
// at most one response per fine, with resubmission overwriting the text,
// status and submission timestamp.
func UpsertVendorResponse(db *sql.DB, fineID int64, response, status string) error {
	var exists int64
	err := db.QueryRow(`SELECT id FROM fines WHERE id = ?`, fineID).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrFineNotFound
	}
	if err != nil {
		return err
	}

	var id int64
	err = db.QueryRow(`SELECT id FROM vendor_responses WHERE fine_id = ?`, fineID).Scan(&id)

	switch {
	case err == sql.ErrNoRows:
		query := `INSERT INTO vendor_responses (fine_id, vendor_response, status)
				  VALUES (?, ?, ?)`
		_, err := db.Exec(query, fineID, response, status)
		return err
	case err != nil:
		return err
	}

	query := `UPDATE vendor_responses
			  SET vendor_response = ?, submitted_at = CURRENT_TIMESTAMP, status = ?
			  WHERE id = ?`
	_, err = db.Exec(query, response, status, id)
	return err
}
