package utils

import (
	"ehr-client/internal/pkg/constvars"
	"ehr-client/internal/pkg/dto/requests"
	"ehr-client/internal/pkg/exceptions"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// BuildCreatePatientFromForm reads the create form. Height and weight are
// optional but must be numbers when present.
func BuildCreatePatientFromForm(r *http.Request) (*requests.CreatePatient, error) {
	if err := r.ParseForm(); err != nil {
		return nil, exceptions.ErrCannotParseForm(err)
	}

	height, err := parseOptionalFloat(r.PostForm, constvars.FormFieldHeight)
	if err != nil {
		return nil, err
	}
	weight, err := parseOptionalFloat(r.PostForm, constvars.FormFieldWeight)
	if err != nil {
		return nil, err
	}

	return &requests.CreatePatient{
		PatientID: r.PostForm.Get(constvars.FormFieldPatientID),
		Name:      r.PostForm.Get(constvars.FormFieldName),
		BirthDate: r.PostForm.Get(constvars.FormFieldBirthDate),
		Height:    height,
		Weight:    weight,
		BloodType: r.PostForm.Get(constvars.FormFieldBloodType),
	}, nil
}

// BuildUpdatePatientFromForm collects only the fields the user filled in,
// so blank inputs never overwrite stored values.
func BuildUpdatePatientFromForm(r *http.Request) (*requests.UpdatePatient, error) {
	if err := r.ParseForm(); err != nil {
		return nil, exceptions.ErrCannotParseForm(err)
	}

	values := make(map[string]interface{})
	for _, field := range []string{constvars.FormFieldName, constvars.FormFieldBirthDate, constvars.FormFieldBloodType} {
		if value := strings.TrimSpace(r.PostForm.Get(field)); value != "" {
			values[field] = value
		}
	}
	for _, field := range []string{constvars.FormFieldHeight, constvars.FormFieldWeight} {
		value, err := parseOptionalFloat(r.PostForm, field)
		if err != nil {
			return nil, err
		}
		if value != nil {
			values[field] = *value
		}
	}

	data := make(map[string]json.RawMessage, len(values))
	for field, value := range values {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		data[field] = raw
	}

	return &requests.UpdatePatient{
		PatientID: r.PostForm.Get(constvars.FormFieldPatientID),
		Data:      data,
	}, nil
}

func BuildPatientIdentifierFromForm(r *http.Request) (*requests.PatientIdentifier, error) {
	if err := r.ParseForm(); err != nil {
		return nil, exceptions.ErrCannotParseForm(err)
	}
	return &requests.PatientIdentifier{
		PatientID: r.PostForm.Get(constvars.FormFieldPatientID),
	}, nil
}

func BuildLoginFromForm(r *http.Request) (*requests.LoginUser, error) {
	if err := r.ParseForm(); err != nil {
		return nil, exceptions.ErrCannotParseForm(err)
	}
	return &requests.LoginUser{
		Username: r.PostForm.Get(constvars.FormFieldUsername),
		Password: r.PostForm.Get(constvars.FormFieldPassword),
	}, nil
}

func parseOptionalFloat(form map[string][]string, field string) (*float64, error) {
	values := form[field]
	if len(values) == 0 {
		return nil, nil
	}
	raw := strings.TrimSpace(values[0])
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("%s must be a number", field))
	}
	return &value, nil
}
