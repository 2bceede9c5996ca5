package controllers

import (
	"ehr-client/internal/app/contracts"
	"ehr-client/internal/app/models"
	"ehr-client/internal/pkg/constvars"
	"ehr-client/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// PatientFormController handles the browser forms. Every submission ends in
// a redirect back to its page with a success or error flash.
type PatientFormController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

func NewPatientFormController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *PatientFormController {
	return &PatientFormController{
		Log:            logger,
		PatientUsecase: patientUsecase,
	}
}

// ShowPage renders the form for the requested path along with any flash
// carried in the query.
func (ctrl *PatientFormController) ShowPage(w http.ResponseWriter, r *http.Request) {
	p, ok := patientPages[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	p.Success = r.URL.Query().Get(constvars.URLQueryParamSuccess)
	p.Error = r.URL.Query().Get(constvars.URLQueryParamError)
	renderPage(ctrl.Log, w, constvars.StatusOK, p)
}

func (ctrl *PatientFormController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	request, err := utils.BuildCreatePatientFromForm(r)
	if err != nil {
		utils.BuildErrorRedirect(ctrl.Log, w, r, constvars.PagePatientCreate, err)
		return
	}

	credential := models.CredentialFromContext(r.Context())
	resp, err := ctrl.PatientUsecase.CreatePatient(r.Context(), credential, request)
	if err != nil {
		utils.BuildErrorRedirect(ctrl.Log, w, r, constvars.PagePatientCreate, err)
		return
	}

	utils.BuildBackendRedirect(w, r, constvars.PagePatientCreate, constvars.CreatePatientSuccessMessage, resp)
}

func (ctrl *PatientFormController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	request, err := utils.BuildUpdatePatientFromForm(r)
	if err != nil {
		utils.BuildErrorRedirect(ctrl.Log, w, r, constvars.PagePatientUpdate, err)
		return
	}

	credential := models.CredentialFromContext(r.Context())
	resp, err := ctrl.PatientUsecase.UpdatePatient(r.Context(), credential, request)
	if err != nil {
		utils.BuildErrorRedirect(ctrl.Log, w, r, constvars.PagePatientUpdate, err)
		return
	}

	utils.BuildBackendRedirect(w, r, constvars.PagePatientUpdate, constvars.UpdatePatientSuccessMessage, resp)
}

func (ctrl *PatientFormController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	request, err := utils.BuildPatientIdentifierFromForm(r)
	if err != nil {
		utils.BuildErrorRedirect(ctrl.Log, w, r, constvars.PagePatientDelete, err)
		return
	}

	credential := models.CredentialFromContext(r.Context())
	resp, err := ctrl.PatientUsecase.DeletePatient(r.Context(), credential, request)
	if err != nil {
		utils.BuildErrorRedirect(ctrl.Log, w, r, constvars.PagePatientDelete, err)
		return
	}

	utils.BuildBackendRedirect(w, r, constvars.PagePatientDelete, constvars.DeletePatientSuccessMessage, resp)
}
