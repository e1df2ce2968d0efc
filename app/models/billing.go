package models

import "strconv"

// BillingRecord is the daily snapshot of the amount owed to the vendor, net
// of fines. Rows are generated by the batch billing pass and are read-only
// through the API.
//
// Invariants maintained by the generator:
//
//	MaxPeopleFed = max(BreakfastCount, LunchCount, DinnerCount)
//	GrossAmount  = MaxPeopleFed * AmountPerPerson
//	NetAmount    = GrossAmount - FineAmount
type BillingRecord struct {
	ID              int64  `json:"id"`
	Date            string `json:"date"`
	BreakfastCount  int64  `json:"breakfastCount"`
	LunchCount      int64  `json:"lunchCount"`
	DinnerCount     int64  `json:"dinnerCount"`
	MaxPeopleFed    int64  `json:"maxPeopleFed"`
	AmountPerPerson int64  `json:"amountPerPerson"`
	GrossAmount     int64  `json:"grossAmount"`
	FineAmount      int64  `json:"fineAmount"`
	NetAmount       int64  `json:"netAmount"`
}

// BillingCSVHeader is the column order for billing CSV exports.
var BillingCSVHeader = []string{
	"date", "breakfastCount", "lunchCount", "dinnerCount",
	"maxPeopleFed", "amountPerPerson", "grossAmount", "fineAmount", "netAmount",
}

// CSVRow renders the record in BillingCSVHeader order.
func (r BillingRecord) CSVRow() []string {
	return []string{
		r.Date,
		strconv.FormatInt(r.BreakfastCount, 10),
		strconv.FormatInt(r.LunchCount, 10),
		strconv.FormatInt(r.DinnerCount, 10),
		strconv.FormatInt(r.MaxPeopleFed, 10),
		strconv.FormatInt(r.AmountPerPerson, 10),
		strconv.FormatInt(r.GrossAmount, 10),
		strconv.FormatInt(r.FineAmount, 10),
		strconv.FormatInt(r.NetAmount, 10),
	}
}
