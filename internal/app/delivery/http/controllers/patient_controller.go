package controllers

import (
	"ehr-client/internal/app/contracts"
	"ehr-client/internal/app/models"
	"ehr-client/internal/pkg/constvars"
	"ehr-client/internal/pkg/dto/requests"
	"ehr-client/internal/pkg/exceptions"
	"ehr-client/internal/pkg/utils"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// PatientController serves the JSON API. Backend replies are relayed with
// their own status code.
type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePatient)
	if err := decodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	credential := models.CredentialFromContext(r.Context())
	resp, err := ctrl.PatientUsecase.CreatePatient(r.Context(), credential, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildBackendResponse(w, resp)
}

func (ctrl *PatientController) FindPatientByID(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromPath(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request := &requests.PatientIdentifier{PatientID: patientID}

	credential := models.CredentialFromContext(r.Context())
	resp, err := ctrl.PatientUsecase.FindPatientByID(r.Context(), credential, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildBackendResponse(w, resp)
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdatePatient)
	if err := decodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	credential := models.CredentialFromContext(r.Context())
	resp, err := ctrl.PatientUsecase.UpdatePatient(r.Context(), credential, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildBackendResponse(w, resp)
}

func (ctrl *PatientController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromPath(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request := &requests.PatientIdentifier{PatientID: patientID}

	credential := models.CredentialFromContext(r.Context())
	resp, err := ctrl.PatientUsecase.DeletePatient(r.Context(), credential, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildBackendResponse(w, resp)
}

// patientIDFromPath returns the decoded patient id. chi matches against
// RawPath when the request path carries escapes such as %2F, leaving the
// segment encoded, so it is unescaped here before the backend path is built.
func patientIDFromPath(r *http.Request) (string, error) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if r.URL.RawPath == "" {
		return patientID, nil
	}
	decoded, err := url.PathUnescape(patientID)
	if err != nil {
		return "", exceptions.ErrInputValidation(err)
	}
	return decoded, nil
}

// decodeJSONBody treats an empty body as an empty object so that missing
// fields are reported by validation rather than as a parse failure.
func decodeJSONBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return exceptions.ErrReadBody(err)
	}
	return exceptions.ErrCannotParseJSON(err)
}
