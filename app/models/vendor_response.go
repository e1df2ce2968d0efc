package models

// VendorResponse is the catering vendor's written reply to a fine. At most
// one live response exists per fine; resubmission overwrites the text, status
// and timestamp.
type VendorResponse struct {
	ID             int64  `json:"id"`
	FineID         int64  `json:"fine_id"`
	VendorResponse string `json:"vendor_response"`
	SubmittedAt    string `json:"submittedAt"`
	Status         string `json:"status"`
}
