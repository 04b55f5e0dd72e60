package models

// WaterMeterSubmission is the payload of a usage submission. It may carry
// several history entries but only the first one is persisted per call.
type WaterMeterSubmission struct {
	AccountID string    `json:"id" validate:"required"`
	PersonID  string    `json:"personId"`
	LatLong   []string  `json:"latLong" validate:"omitempty,len=2"`
	History   []History `json:"history" validate:"required,min=1,dive"`
}
