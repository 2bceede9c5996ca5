package controllers

import (
	"ehr-client/internal/pkg/constvars"
	"ehr-client/internal/pkg/dto/responses"
	"ehr-client/internal/pkg/utils"
	"net/http"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (ctrl *HealthController) Root(w http.ResponseWriter, r *http.Request) {
	utils.BuildTextResponse(w, constvars.StatusOK, constvars.ServiceRunningMessage)
}

func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.Health{
		Status:  constvars.HealthStatusOK,
		Service: constvars.ServiceName,
	})
}
