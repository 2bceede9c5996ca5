package utils

import (
	"ehr-client/internal/pkg/dto/requests"
	"ehr-client/internal/pkg/exceptions"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_CreatePatient(t *testing.T) {
	err := ValidateStruct(&requests.CreatePatient{Name: "Jane", BirthDate: "1990-01-01"})

	require.Error(t, err)
	assert.Equal(t, "patient_id is required", exceptions.FormatFirstValidationError(err))
}

func TestValidateStruct_UpdatePatient(t *testing.T) {
	tests := []struct {
		name    string
		input   *requests.UpdatePatient
		message string
	}{
		{"Missing Data", &requests.UpdatePatient{PatientID: "P-1"}, "data is required"},
		{"Empty Data", &requests.UpdatePatient{PatientID: "P-1", Data: map[string]json.RawMessage{}}, "data must contain at least 1 item(s)"},
		{"Valid", &requests.UpdatePatient{PatientID: "P-1", Data: map[string]json.RawMessage{"name": json.RawMessage(`"x"`)}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.message, exceptions.FormatFirstValidationError(err))
		})
	}
}
