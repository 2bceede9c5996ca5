package patients

import (
	"context"
	"ehr-client/internal/app/contracts"
	"ehr-client/internal/app/models"
	"ehr-client/internal/pkg/constvars"
	"ehr-client/internal/pkg/dto/requests"
	"ehr-client/internal/pkg/dto/responses"
	"ehr-client/internal/pkg/exceptions"
	"ehr-client/internal/pkg/utils"
	"net/url"
	"time"

	"go.uber.org/zap"
)

type patientUsecase struct {
	EHRBackendClient contracts.EHRBackendClient
	Log              *zap.Logger
}

func NewPatientUsecase(ehrBackendClient contracts.EHRBackendClient, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		EHRBackendClient: ehrBackendClient,
		Log:              logger,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, credential models.Credential, request *requests.CreatePatient) (*responses.BackendResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeCreatePatientRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("patientUsecase.CreatePatient validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	payload := &requests.BackendCreatePatient{
		ID:        utils.GenerateRecordID(),
		PatientID: request.PatientID,
		Name:      request.Name,
		BirthDate: request.BirthDate,
		Height:    request.Height,
		Weight:    request.Weight,
		BloodType: request.BloodType,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	resp, err := uc.EHRBackendClient.Forward(ctx, constvars.MethodPost, constvars.BackendPathPatients, payload, credential.AuthHeader())
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return resp, nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, credential models.Credential, request *requests.PatientIdentifier) (*responses.BackendResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizePatientIdentifierRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	resp, err := uc.EHRBackendClient.Forward(ctx, constvars.MethodGet, patientPath(request.PatientID), nil, credential.AuthHeader())
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.FindPatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return resp, nil
}

// UpdatePatient sends only the changed fields; the patient id travels in
// the path.
func (uc *patientUsecase) UpdatePatient(ctx context.Context, credential models.Credential, request *requests.UpdatePatient) (*responses.BackendResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeUpdatePatientRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("patientUsecase.UpdatePatient validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	resp, err := uc.EHRBackendClient.Forward(ctx, constvars.MethodPut, patientPath(request.PatientID), request.Data, credential.AuthHeader())
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return resp, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, credential models.Credential, request *requests.PatientIdentifier) (*responses.BackendResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizePatientIdentifierRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	resp, err := uc.EHRBackendClient.Forward(ctx, constvars.MethodDelete, patientPath(request.PatientID), nil, credential.AuthHeader())
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.DeletePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return resp, nil
}

func patientPath(patientID string) string {
	return constvars.BackendPathPatients + "/" + url.PathEscape(patientID)
}
