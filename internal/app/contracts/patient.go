package contracts

import (
	"context"
	"ehr-client/internal/app/models"
	"ehr-client/internal/pkg/dto/requests"
	"ehr-client/internal/pkg/dto/responses"
)

// PatientUsecase validates a patient operation and forwards it to the EHR
// backend with the caller's credential. A backend reply of any status is
// returned as a response; only local validation and an unreachable backend
// produce an error.
type PatientUsecase interface {
	CreatePatient(ctx context.Context, credential models.Credential, request *requests.CreatePatient) (*responses.BackendResponse, error)
	FindPatientByID(ctx context.Context, credential models.Credential, request *requests.PatientIdentifier) (*responses.BackendResponse, error)
	UpdatePatient(ctx context.Context, credential models.Credential, request *requests.UpdatePatient) (*responses.BackendResponse, error)
	DeletePatient(ctx context.Context, credential models.Credential, request *requests.PatientIdentifier) (*responses.BackendResponse, error)
}
