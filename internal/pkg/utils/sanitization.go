package utils

import (
	"ehr-client/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.Name = strings.TrimSpace(input.Name)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	input.BloodType = strings.TrimSpace(input.BloodType)
}

func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	input.PatientID = strings.TrimSpace(input.PatientID)
}

func SanitizePatientIdentifierRequest(input *requests.PatientIdentifier) {
	input.PatientID = strings.TrimSpace(input.PatientID)
}

// SanitizeLoginRequest trims the username only. Passwords are sent to the
// backend exactly as typed.
func SanitizeLoginRequest(input *requests.LoginUser) {
	input.Username = strings.TrimSpace(input.Username)
}
