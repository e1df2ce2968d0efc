package models

import "strconv"

// Fine is a monetary penalty levied against the catering vendor for a quality
// failure on a given date and meal. Fines are append-only; several can exist
// for the same date and meal.
type Fine struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Meal      Meal   `json:"meal"`
	Reason    string `json:"reason"`
	Amount    int64  `json:"amount"`
	ImposedBy string `json:"imposedBy"`
}

// FineRecord is the flat list/export row: a fine left-joined with its vendor
// response. VendorResponse and ResponseStatus are nil when the vendor has not
// responded yet.
type FineRecord struct {
	ID             int64   `json:"id"`
	Date           string  `json:"date"`
	Meal           Meal    `json:"meal"`
	Reason         string  `json:"reason"`
	Amount         int64   `json:"amount"`
	ImposedBy      string  `json:"imposedBy"`
	VendorResponse *string `json:"vendorResponse"`
	ResponseStatus *string `json:"responseStatus"`
}

// FineCSVHeader is the column order for fine CSV exports.
var FineCSVHeader = []string{
	"date", "meal", "reason", "amount", "imposedBy", "vendorResponse", "responseStatus",
}

// CSVRow renders the record in FineCSVHeader order.
func (r FineRecord) CSVRow() []string {
	return []string{
		r.Date, string(r.Meal), r.Reason,
		strconv.FormatInt(r.Amount, 10), r.ImposedBy,
		csvString(r.VendorResponse), csvString(r.ResponseStatus),
	}
}

func csvString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
