package utils

import (
	"ehr-client/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/patients/create", strings.NewReader(values.Encode()))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	return req
}

func TestBuildCreatePatientFromForm(t *testing.T) {
	t.Run("Optional Numbers Parsed", func(t *testing.T) {
		req := newFormRequest(url.Values{
			"patient_id": {"P-1"},
			"name":       {"Jane"},
			"birth_date": {"1990-01-01"},
			"height":     {"170.5"},
			"weight":     {""},
		})

		patient, err := BuildCreatePatientFromForm(req)

		require.NoError(t, err)
		assert.Equal(t, "P-1", patient.PatientID)
		require.NotNil(t, patient.Height)
		assert.Equal(t, 170.5, *patient.Height)
		assert.Nil(t, patient.Weight)
	})

	t.Run("Non Numeric Height Rejected", func(t *testing.T) {
		req := newFormRequest(url.Values{"patient_id": {"P-1"}, "height": {"tall"}})

		_, err := BuildCreatePatientFromForm(req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "height must be a number")
	})
}

func TestBuildUpdatePatientFromForm(t *testing.T) {
	req := newFormRequest(url.Values{
		"patient_id": {"P-1"},
		"name":       {"  "},
		"blood_type": {"AB-"},
		"weight":     {"60"},
	})

	update, err := BuildUpdatePatientFromForm(req)

	require.NoError(t, err)
	assert.Equal(t, "P-1", update.PatientID)
	require.Len(t, update.Data, 2)
	assert.JSONEq(t, `"AB-"`, string(update.Data["blood_type"]))
	assert.JSONEq(t, `60`, string(update.Data["weight"]))
}

func TestBuildUpdatePatientFromForm_RejectsNonFiniteNumbers(t *testing.T) {
	for _, value := range []string{"NaN", "Inf", "-Inf"} {
		req := newFormRequest(url.Values{"patient_id": {"P-1"}, "height": {value}})

		_, err := BuildUpdatePatientFromForm(req)

		require.Error(t, err, value)
		assert.Contains(t, err.Error(), "height must be a number")
	}
}

func TestBuildLoginFromForm(t *testing.T) {
	req := newFormRequest(url.Values{"username": {"alice"}, "password": {"pw"}})

	login, err := BuildLoginFromForm(req)

	require.NoError(t, err)
	assert.Equal(t, "alice", login.Username)
	assert.Equal(t, "pw", login.Password)
}
