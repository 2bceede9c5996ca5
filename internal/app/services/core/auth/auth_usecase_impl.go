package auth

import (
	"context"
	"ehr-client/internal/app/contracts"
	"ehr-client/internal/app/models"
	"ehr-client/internal/pkg/constvars"
	"ehr-client/internal/pkg/dto/requests"
	"ehr-client/internal/pkg/exceptions"
	"ehr-client/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type authUsecase struct {
	EHRBackendClient contracts.EHRBackendClient
	Log              *zap.Logger
}

func NewAuthUsecase(ehrBackendClient contracts.EHRBackendClient, logger *zap.Logger) contracts.AuthUsecase {
	return &authUsecase{
		EHRBackendClient: ehrBackendClient,
		Log:              logger,
	}
}

// Login exchanges username and password for a backend credential. Whatever
// the backend says on rejection, the caller only ever sees the generic
// invalid credentials error.
func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*models.Credential, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	utils.SanitizeLoginRequest(request)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrUsernameAndPasswordRequired(err)
	}

	resp, err := uc.EHRBackendClient.Forward(ctx, constvars.MethodPost, constvars.BackendPathLogin, request, http.Header{})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != constvars.StatusOK {
		uc.Log.Warn("authUsecase.Login rejected by backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUsernameKey, request.Username),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrInvalidUsernameOrPassword(fmt.Errorf("backend answered %d", resp.StatusCode))
	}

	token := gjson.GetBytes(resp.Body, "access_token").String()
	if token == "" {
		uc.Log.Warn("authUsecase.Login backend response without token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUsernameKey, request.Username),
		)
		return nil, exceptions.ErrInvalidUsernameOrPassword(errors.New(constvars.ErrDevBackendLoginNoToken))
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)
	return &models.Credential{
		Token: token,
		Role:  gjson.GetBytes(resp.Body, "role").String(),
	}, nil
}
