package requests

import "github.com/goccy/go-json"

type CreatePatient struct {
	PatientID string   `json:"patient_id" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	BirthDate string   `json:"birth_date" validate:"required"`
	Height    *float64 `json:"height,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	BloodType string   `json:"blood_type,omitempty"`
}

// BackendCreatePatient is the payload sent to the EHR backend. ID and
// CreatedAt are issued by this service at creation time.
type BackendCreatePatient struct {
	ID        string   `json:"id"`
	PatientID string   `json:"patient_id"`
	Name      string   `json:"name"`
	BirthDate string   `json:"birth_date"`
	Height    *float64 `json:"height,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	BloodType string   `json:"blood_type,omitempty"`
	CreatedAt string   `json:"created_at"`
}

// UpdatePatient keeps each data value as the raw JSON the caller sent so
// numbers reach the backend without float rounding.
type UpdatePatient struct {
	PatientID string                     `json:"patient_id" validate:"required"`
	Data      map[string]json.RawMessage `json:"data" validate:"required,min=1"`
}

type PatientIdentifier struct {
	PatientID string `json:"patient_id" validate:"required"`
}
