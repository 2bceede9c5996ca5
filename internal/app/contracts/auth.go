package contracts

import (
	"context"
	"ehr-client/internal/app/models"
	"ehr-client/internal/pkg/dto/requests"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.LoginUser) (*models.Credential, error)
}
